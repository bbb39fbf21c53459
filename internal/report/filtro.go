package report

import (
	"time"

	"github.com/danilocardosoweb/ControleUsinagem/internal/datas"
	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

// Filtro são os parâmetros da tela de relatórios. Datas são inclusivas nos
// dois extremos e todos os campos além do tipo são opcionais.
type Filtro struct {
	Tipo       string `json:"tipo"`
	DataInicio string `json:"data_inicio"`
	DataFim    string `json:"data_fim"`
	Maquina    string `json:"maquina"`
	Operador   string `json:"operador"`
	Formato    string `json:"formato"`
	Modo       string `json:"modo"`
}

// dentroDoPeriodo compara datas ISO lexicograficamente; um registro sem data
// só passa quando nenhum limite foi definido.
func (f Filtro) dentroDoPeriodo(dia string) bool {
	inicio := datas.ISODe(f.DataInicio)
	fim := datas.ISODe(f.DataFim)
	if inicio != "" && (dia == "" || dia < inicio) {
		return false
	}
	if fim != "" && (dia == "" || dia > fim) {
		return false
	}
	return true
}

// FiltrarApontamentos aplica período, máquina e operador.
func FiltrarApontamentos(aps []*storage.Apontamento, f Filtro) []*storage.Apontamento {
	out := make([]*storage.Apontamento, 0, len(aps))
	for _, a := range aps {
		if a == nil {
			continue
		}
		if !f.dentroDoPeriodo(datas.ISO(a.Inicio)) {
			continue
		}
		if f.Maquina != "" && a.Maquina != f.Maquina {
			continue
		}
		if f.Operador != "" && a.Operador != f.Operador {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ParadaNorm é a forma canônica de uma parada, após resolver as duas
// grafias possíveis dos campos de início/fim e motivo/tipo.
type ParadaNorm struct {
	Maquina string
	Inicio  *time.Time
	Fim     *time.Time
	Motivo  string
	Tipo    string
}

// NormalizarParadas resolve os aliases de coluna uma única vez; todo o
// restante do motor consome apenas a forma normalizada.
func NormalizarParadas(paradas []*storage.Parada) []ParadaNorm {
	out := make([]ParadaNorm, 0, len(paradas))
	for _, p := range paradas {
		if p == nil {
			continue
		}
		out = append(out, ParadaNorm{
			Maquina: p.Maquina,
			Inicio:  primeiraData(p.Inicio, p.InicioTimestamp),
			Fim:     primeiraData(p.Fim, p.FimTimestamp),
			Motivo:  primeiroTexto(p.MotivoParada, p.MotivoParadaLegado),
			Tipo:    primeiroTexto(p.TipoParada, p.TipoParadaLegado),
		})
	}
	return out
}

// FiltrarParadas aplica período e máquina. Paradas não têm operador, então
// esse critério é ignorado incondicionalmente.
func FiltrarParadas(paradas []ParadaNorm, f Filtro) []ParadaNorm {
	out := make([]ParadaNorm, 0, len(paradas))
	for _, p := range paradas {
		if !f.dentroDoPeriodo(datas.ISO(p.Inicio)) {
			continue
		}
		if f.Maquina != "" && p.Maquina != f.Maquina {
			continue
		}
		out = append(out, p)
	}
	return out
}

// MapaMaquinas monta o mapa id→nome de exibição.
func MapaMaquinas(maquinas []*storage.Maquina) map[string]string {
	m := make(map[string]string, len(maquinas))
	for _, mq := range maquinas {
		if mq == nil {
			continue
		}
		m[mq.ID] = mq.NomeExibicao()
	}
	return m
}

func nomeMaquina(mapa map[string]string, id string) string {
	if nome, ok := mapa[id]; ok && nome != "" {
		return nome
	}
	if id != "" {
		return id
	}
	return "-"
}

func primeiraData(valores ...*time.Time) *time.Time {
	for _, v := range valores {
		if v != nil {
			return v
		}
	}
	return nil
}

func primeiroTexto(valores ...string) string {
	for _, v := range valores {
		if v != "" {
			return v
		}
	}
	return ""
}

package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/danilocardosoweb/ControleUsinagem/internal/constants"
	"github.com/danilocardosoweb/ControleUsinagem/internal/datas"
	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

// pedidoSeqPrecedencia é a cadeia de precedência dos campos legados que
// podem guardar o pedido/sequência de um apontamento: campo canônico, dois
// aliases antigos e, por fim, a síntese "<pedido>/<seq>" a partir dos campos
// separados. A ordem é fixa e testada; não acrescentar "primeiro não vazio"
// ad hoc em outros pontos.
var pedidoSeqPrecedencia = []func(*storage.Apontamento) string{
	func(a *storage.Apontamento) string { return a.OrdemTrabalho },
	func(a *storage.Apontamento) string { return a.PedidoSeq },
	func(a *storage.Apontamento) string { return a.PedidoSeqLegado },
	func(a *storage.Apontamento) string {
		pedido := primeiroTexto(a.Pedido, a.NumeroPedido)
		if pedido == "" {
			return ""
		}
		if seq := primeiroTexto(a.Seq, a.Sequencia); seq != "" {
			return pedido + "/" + seq
		}
		return pedido
	},
}

// PedidoSeqExibicao resolve o pedido/sequência para exibição, com "-" quando
// nenhum campo da cadeia está preenchido.
func PedidoSeqExibicao(a *storage.Apontamento) string {
	for _, campo := range pedidoSeqPrecedencia {
		if v := campo(a); v != "" {
			return v
		}
	}
	return "-"
}

// OrdenarPorInicioDesc devolve uma cópia ordenada do mais recente para o
// mais antigo; registros sem início vão para o fim.
func OrdenarPorInicioDesc(aps []*storage.Apontamento) []*storage.Apontamento {
	ordenados := append([]*storage.Apontamento(nil), aps...)
	sort.SliceStable(ordenados, func(i, j int) bool {
		ti := inicioOuZero(ordenados[i])
		tj := inicioOuZero(ordenados[j])
		return ti.After(tj)
	})
	return ordenados
}

// LinhasProducao é a listagem de produção: uma linha por apontamento
// filtrado, sem agregação, enriquecida com nome de máquina e ferramenta.
func LinhasProducao(aps []*storage.Apontamento, maq map[string]string) []*Row {
	ordenados := OrdenarPorInicioDesc(aps)
	linhas := make([]*Row, 0, len(ordenados))
	for _, a := range ordenados {
		r := NewRow()
		r.Set("Data", datas.DataBR(a.Inicio))
		r.Set("Hora", datas.HoraBR(a.Inicio))
		r.Set("Maquina", nomeMaquina(maq, a.Maquina))
		r.Set("Operador", ouTraco(a.Operador))
		r.Set("PedidoSeq", PedidoSeqExibicao(a))
		r.Set("Produto", ouTraco(a.CodigoProduto()))
		r.Set("Ferramenta", ouTraco(ExtrairFerramenta(a.CodigoProduto())))
		r.Set("Quantidade", a.Quantidade)
		r.Set("Refugo", a.QtdRefugo)
		r.Set("RackOuPallet", ouTraco(a.RackOuPallet))
		r.Set("QtdPedido", numeroOuTraco(a.QtdPedido))
		r.Set("Separado", numeroOuTraco(a.Separado))
		linhas = append(linhas, r)
	}
	return linhas
}

// LinhasParadas é a listagem de paradas já normalizadas e filtradas.
func LinhasParadas(paradas []ParadaNorm, maq map[string]string) []*Row {
	linhas := make([]*Row, 0, len(paradas))
	for _, p := range paradas {
		r := NewRow()
		r.Set("Data", datas.DataBR(p.Inicio))
		r.Set("Maquina", nomeMaquina(maq, p.Maquina))
		r.Set("Motivo", ouTraco(p.Motivo))
		r.Set("Tipo", tipoParadaExibicao(p.Tipo))
		r.Set("Inicio", ouTraco(datas.DataHoraBR(p.Inicio)))
		r.Set("Fim", ouTraco(datas.DataHoraBR(p.Fim)))
		r.Set("Duracao_min", minutosOuTraco(datas.DuracaoMin(p.Inicio, p.Fim)))
		linhas = append(linhas, r)
	}
	return linhas
}

func tipoParadaExibicao(tipo string) string {
	if nome, ok := constants.NomesTipoParada[tipo]; ok {
		return nome
	}
	return ouTraco(tipo)
}

// LinhasDesempenho agrupa por (operador, máquina) somando produção e
// minutos apontados; a taxa é peças por hora apontada.
func LinhasDesempenho(aps []*storage.Apontamento, maq map[string]string) []*Row {
	type grupo struct {
		Operador string
		Maquina  string
		Producao float64
		Minutos  int
	}
	var ordem []string
	grupos := make(map[string]*grupo)
	for _, a := range aps {
		op := ouTraco(a.Operador)
		mq := nomeMaquina(maq, a.Maquina)
		chave := op + "__" + mq
		g, ok := grupos[chave]
		if !ok {
			g = &grupo{Operador: op, Maquina: mq}
			grupos[chave] = g
			ordem = append(ordem, chave)
		}
		g.Producao += a.Quantidade
		if m := datas.DuracaoMin(a.Inicio, a.Fim); m != nil {
			g.Minutos += *m
		}
	}

	linhas := make([]*Row, 0, len(ordem))
	for _, chave := range ordem {
		g := grupos[chave]
		r := NewRow()
		r.Set("Operador", g.Operador)
		r.Set("Maquina", g.Maquina)
		r.Set("Producao", g.Producao)
		r.Set("Minutos", g.Minutos)
		r.Set("Prod_por_Hora", fmt.Sprintf("%.2f", taxaPorHora(g.Producao, g.Minutos)))
		linhas = append(linhas, r)
	}
	return linhas
}

// LinhasOEE acumula, por (data, máquina), a produção e os minutos de
// produção dos apontamentos e os minutos de parada das paradas. Os
// percentuais de disponibilidade/performance/qualidade não são calculados
// aqui — a coluna OEE fica propositalmente em aberto.
func LinhasOEE(aps []*storage.Apontamento, paradas []ParadaNorm, maq map[string]string) []*Row {
	type grupo struct {
		Dia       string
		Maquina   string
		Producao  float64
		ProdMin   int
		ParadaMin int
	}
	var ordem []string
	grupos := make(map[string]*grupo)
	pegar := func(dia, mq string) *grupo {
		chave := dia + "__" + mq
		g, ok := grupos[chave]
		if !ok {
			g = &grupo{Dia: dia, Maquina: mq}
			grupos[chave] = g
			ordem = append(ordem, chave)
		}
		return g
	}

	for _, a := range aps {
		g := pegar(ouTraco(datas.ISO(a.Inicio)), nomeMaquina(maq, a.Maquina))
		g.Producao += a.Quantidade
		if m := datas.DuracaoMin(a.Inicio, a.Fim); m != nil {
			g.ProdMin += *m
		}
	}
	for _, p := range paradas {
		g := pegar(ouTraco(datas.ISO(p.Inicio)), nomeMaquina(maq, p.Maquina))
		if m := datas.DuracaoMin(p.Inicio, p.Fim); m != nil {
			g.ParadaMin += *m
		}
	}

	sort.SliceStable(ordem, func(i, j int) bool {
		return grupos[ordem[i]].Dia < grupos[ordem[j]].Dia
	})

	linhas := make([]*Row, 0, len(ordem))
	for _, chave := range ordem {
		g := grupos[chave]
		r := NewRow()
		r.Set("Data", g.Dia)
		r.Set("Maquina", g.Maquina)
		r.Set("Producao", g.Producao)
		r.Set("ProdMin", g.ProdMin)
		r.Set("ParadaMin", g.ParadaMin)
		r.Set("OEE", "-")
		linhas = append(linhas, r)
	}
	return linhas
}

// LinhasExpedicao soma a quantidade produzida por ferramenta e cruza com a
// configuração de embalagem para estimar peso, pallets/ripas ou caixas.
// Apontamentos cujo produto não decodifica uma ferramenta ficam de fora.
func LinhasExpedicao(aps []*storage.Apontamento, cfg map[string]*storage.FerramentaCfg) []*Row {
	type grupo struct {
		Ferramenta string
		Quantidade float64
	}
	var ordem []string
	grupos := make(map[string]*grupo)
	for _, a := range aps {
		ferramenta := ExtrairFerramenta(a.CodigoProduto())
		if ferramenta == "" {
			continue
		}
		g, ok := grupos[ferramenta]
		if !ok {
			g = &grupo{Ferramenta: ferramenta}
			grupos[ferramenta] = g
			ordem = append(ordem, ferramenta)
		}
		g.Quantidade += a.Quantidade
	}

	linhas := make([]*Row, 0, len(ordem))
	for _, ferramenta := range ordem {
		g := grupos[ferramenta]
		c := cfg[ferramenta]

		embalagem := storage.EmbalagemPallet
		var comprimentoMM, pesoLinear float64
		if c != nil {
			if c.Embalagem != "" {
				embalagem = c.Embalagem
			}
			comprimentoMM = c.ComprimentoMM
			pesoLinear = c.PesoLinear
		}
		peso := pesoLinear * (comprimentoMM / 1000) * g.Quantidade

		var pallets, caixas, ripas any = "-", "-", "-"
		if embalagem == storage.EmbalagemPallet {
			if c != nil && c.PcsPorPallet > 0 {
				n := int(math.Ceil(g.Quantidade / c.PcsPorPallet))
				pallets = n
				ripas = n * int(c.RipasPorPallet)
			}
		} else {
			if c != nil && c.PcsPorCaixa > 0 {
				caixas = int(math.Ceil(g.Quantidade / c.PcsPorCaixa))
			}
		}

		r := NewRow()
		r.Set("Ferramenta", g.Ferramenta)
		if c != nil && c.ComprimentoMM > 0 {
			r.Set("Comprimento_mm", c.ComprimentoMM)
		} else {
			r.Set("Comprimento_mm", "-")
		}
		r.Set("Quantidade", g.Quantidade)
		r.Set("Embalagem", embalagem)
		r.Set("Pallets", pallets)
		r.Set("Caixas", caixas)
		r.Set("Ripas", ripas)
		r.Set("Peso_Estimado_kg", FormatarNumero(peso, 3))
		linhas = append(linhas, r)
	}
	return linhas
}

// LinhasProdutividade agrupa por item (ferramenta + comprimento acabado),
// com médias por hora apontada e por dia com produção. Ajustes manuais do
// Override Store entram como leitura direta, sem alterar o agregado.
func LinhasProdutividade(aps []*storage.Apontamento, overrides map[string]map[string]string) []*Row {
	type grupo struct {
		Ferramenta  string
		Comprimento string
		Quantidade  float64
		Minutos     int
		PorDia      map[string]float64
	}
	var ordem []string
	grupos := make(map[string]*grupo)
	for _, a := range aps {
		cod := a.CodigoProduto()
		ferramenta := ExtrairFerramenta(cod)
		comprimento := ExtrairComprimentoAcabado(cod)
		chave := ChaveProdutividade(ferramenta, comprimento)
		g, ok := grupos[chave]
		if !ok {
			g = &grupo{Ferramenta: ferramenta, Comprimento: comprimento, PorDia: make(map[string]float64)}
			grupos[chave] = g
			ordem = append(ordem, chave)
		}
		g.Quantidade += a.Quantidade
		if m := datas.DuracaoMin(a.Inicio, a.Fim); m != nil {
			g.Minutos += *m
		}
		if dia := datas.ISO(a.Inicio); dia != "" {
			g.PorDia[dia] += a.Quantidade
		}
	}

	sort.SliceStable(ordem, func(i, j int) bool {
		return grupos[ordem[i]].Ferramenta < grupos[ordem[j]].Ferramenta
	})

	linhas := make([]*Row, 0, len(ordem))
	for _, chave := range ordem {
		g := grupos[chave]
		mediaDia := 0.0
		if len(g.PorDia) > 0 {
			total := 0.0
			for _, q := range g.PorDia {
				total += q
			}
			mediaDia = total / float64(len(g.PorDia))
		}
		ajustes := overrides[chave]

		r := NewRow()
		r.Set("Ferramenta", ouTraco(g.Ferramenta))
		r.Set("Comprimento", ouTraco(g.Comprimento))
		r.Set("Quantidade", g.Quantidade)
		r.Set("Minutos", g.Minutos)
		r.Set("Media_pcs_h", fmt.Sprintf("%.2f", taxaPorHora(g.Quantidade, g.Minutos)))
		r.Set("Ajuste_pcs_h", ajustes["h"])
		r.Set("Media_pcs_dia", FormatarNumero(mediaDia, 0))
		r.Set("Ajuste_pcs_dia", ajustes["d"])
		linhas = append(linhas, r)
	}
	return linhas
}

// ChaveProdutividade compõe a identidade de grupo usada pelo Override Store.
func ChaveProdutividade(ferramenta, comprimento string) string {
	return ferramenta + "__" + comprimento
}

func taxaPorHora(quantidade float64, minutos int) float64 {
	if minutos <= 0 {
		return 0
	}
	return quantidade / (float64(minutos) / 60)
}

func inicioOuZero(a *storage.Apontamento) (t time.Time) {
	if a != nil && a.Inicio != nil {
		t = *a.Inicio
	}
	return t
}

func ouTraco(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func numeroOuTraco(v *float64) any {
	if v == nil {
		return "-"
	}
	return *v
}

func minutosOuTraco(m *int) any {
	if m == nil {
		return "-"
	}
	return *m
}

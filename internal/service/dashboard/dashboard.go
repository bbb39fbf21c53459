// Package dashboard calcula os cartões da tela inicial: produção do dia,
// tempo de parada do dia, situação dos pedidos e ordens em execução.
package dashboard

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danilocardosoweb/ControleUsinagem/internal/datas"
	"github.com/danilocardosoweb/ControleUsinagem/internal/report"
	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

type DashboardStorage interface {
	GetApontamentos(ctx context.Context) ([]*storage.Apontamento, error)
	GetParadas(ctx context.Context) ([]*storage.Parada, error)
	GetPedidos(ctx context.Context) ([]*storage.Pedido, error)
	GetMaquinas(ctx context.Context) ([]*storage.Maquina, error)
}

type DashboardService struct {
	storage DashboardStorage
}

func NewDashboardService(storage DashboardStorage) *DashboardService {
	return &DashboardService{storage: storage}
}

// OEE segue como placeholder até existirem metas e calendário de turnos.
type OEE struct {
	Disponibilidade int `json:"disponibilidade"`
	Performance     int `json:"performance"`
	Qualidade       int `json:"qualidade"`
	Total           int `json:"total"`
}

type OrdemExecucao struct {
	Codigo    string `json:"codigo"`
	Perfil    string `json:"perfil"`
	Maquina   string `json:"maquina"`
	Operador  string `json:"operador"`
	Progresso int    `json:"progresso"`
}

type Resumo struct {
	OEE              OEE             `json:"oee"`
	TempoParada      string          `json:"tempo_parada"`
	ProducaoDiaria   float64         `json:"producao_diaria"`
	OrdensConcluidas int             `json:"ordens_concluidas"`
	OrdensPendentes  int             `json:"ordens_pendentes"`
	OrdensExecucao   []OrdemExecucao `json:"ordens_execucao"`
}

const limiteOrdensExecucao = 5

// identificadorCru detecta ids de máquina não resolvidos (uuid e afins) para
// não exibi-los como nome.
var identificadorCru = regexp.MustCompile(`^[0-9a-fA-F-]{8,}$`)

// Montar calcula o resumo do dia de "agora".
func (s *DashboardService) Montar(ctx context.Context, agora time.Time) (*Resumo, error) {
	const op = "service.dashboard.Montar"

	var (
		aps      []*storage.Apontamento
		paradas  []*storage.Parada
		pedidos  []*storage.Pedido
		maquinas []*storage.Maquina
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		aps, err = s.storage.GetApontamentos(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		paradas, err = s.storage.GetParadas(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		pedidos, err = s.storage.GetPedidos(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		maquinas, err = s.storage.GetMaquinas(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	dia := agora.Format("2006-01-02")
	resumo := &Resumo{
		ProducaoDiaria: producaoDoDia(aps, dia),
		TempoParada:    tempoParadaDoDia(paradas, agora),
		OrdensExecucao: ordensEmExecucao(aps, pedidos, maquinas),
	}
	for _, p := range pedidos {
		if p.Concluido() {
			resumo.OrdensConcluidas++
		} else {
			resumo.OrdensPendentes++
		}
	}
	return resumo, nil
}

func producaoDoDia(aps []*storage.Apontamento, dia string) float64 {
	total := 0.0
	for _, a := range aps {
		if a != nil && datas.ISO(a.Inicio) == dia {
			total += a.Quantidade
		}
	}
	return total
}

// tempoParadaDoDia soma a interseção de cada parada com o dia corrente.
// Ao contrário do motor de relatórios, aqui uma parada sem fim conta como
// "em andamento até agora".
func tempoParadaDoDia(paradas []*storage.Parada, agora time.Time) string {
	inicioDia := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	fimDia := inicioDia.Add(24*time.Hour - time.Millisecond)

	var total time.Duration
	for _, p := range report.NormalizarParadas(paradas) {
		if p.Inicio == nil {
			continue
		}
		fim := agora
		if p.Fim != nil {
			fim = *p.Fim
		}
		inicio := *p.Inicio
		if inicio.Before(inicioDia) {
			inicio = inicioDia
		}
		if fim.After(fimDia) {
			fim = fimDia
		}
		if delta := fim.Sub(inicio); delta > 0 {
			total += delta
		}
	}

	if total <= 0 {
		return "-"
	}
	minutos := int(total.Minutes())
	return fmt.Sprintf("%02d:%02d", minutos/60, minutos%60)
}

func ordensEmExecucao(aps []*storage.Apontamento, pedidos []*storage.Pedido, maquinas []*storage.Maquina) []OrdemExecucao {
	type acumulado struct {
		Quantidade float64
		Ultimo     *storage.Apontamento
	}
	porPedido := make(map[string]*acumulado)
	for _, a := range aps {
		if a == nil {
			continue
		}
		seq := report.PedidoSeqExibicao(a)
		if seq == "-" {
			continue
		}
		ac, ok := porPedido[seq]
		if !ok {
			ac = &acumulado{}
			porPedido[seq] = ac
		}
		ac.Quantidade += a.Quantidade
		ac.Ultimo = a
	}

	// Nome visível por id e também por código, como as duas formas chegam
	// nos apontamentos.
	nomes := make(map[string]string)
	for _, m := range maquinas {
		if m == nil {
			continue
		}
		nome := m.NomeExibicao()
		if m.ID != "" {
			nomes[m.ID] = nome
		}
		if m.Codigo != "" {
			nomes[m.Codigo] = nome
		}
	}

	var ordens []OrdemExecucao
	for _, p := range pedidos {
		if len(ordens) >= limiteOrdensExecucao {
			break
		}
		if p == nil {
			continue
		}
		ac := porPedido[p.PedidoSeq]
		if ac == nil || ac.Quantidade <= 0 {
			continue
		}
		if p.Status == "finalizado" || p.Status == "concluido" {
			continue
		}
		if p.QtdPedido > 0 && ac.Quantidade >= p.QtdPedido {
			continue
		}

		progresso := 0
		if p.QtdPedido > 0 {
			progresso = int(math.Round(ac.Quantidade / p.QtdPedido * 100))
			if progresso > 100 {
				progresso = 100
			}
		}

		maquina := "-"
		operador := "-"
		if ac.Ultimo != nil {
			cru := ac.Ultimo.Maquina
			if cru == "" {
				cru = p.OperacaoAtual
			}
			if nome, ok := nomes[cru]; ok {
				maquina = nome
			} else if cru != "" && !identificadorCru.MatchString(cru) {
				maquina = cru
			}
			if ac.Ultimo.Operador != "" {
				operador = ac.Ultimo.Operador
			}
		}

		codigo := p.PedidoSeq
		if codigo == "" {
			codigo = p.NroOP
		}
		if codigo == "" {
			codigo = p.ID
		}
		ordens = append(ordens, OrdemExecucao{
			Codigo:    codigo,
			Perfil:    p.Produto,
			Maquina:   maquina,
			Operador:  operador,
			Progresso: progresso,
		})
	}
	return ordens
}

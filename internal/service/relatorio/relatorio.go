// Package relatorio orquestra o motor de relatórios: carrega o snapshot das
// coleções, aplica o filtro e delega as projeções puras a internal/report.
package relatorio

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danilocardosoweb/ControleUsinagem/internal/constants"
	"github.com/danilocardosoweb/ControleUsinagem/internal/report"
	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

type RelatorioStorage interface {
	GetApontamentos(ctx context.Context) ([]*storage.Apontamento, error)
	GetParadas(ctx context.Context) ([]*storage.Parada, error)
	GetLotes(ctx context.Context) ([]*storage.Lote, error)
	GetFerramentasCfg(ctx context.Context) ([]*storage.FerramentaCfg, error)
	GetMaquinas(ctx context.Context) ([]*storage.Maquina, error)
	GetOverrides(ctx context.Context) (map[string]map[string]string, error)
}

type RelatorioService struct {
	storage RelatorioStorage
	log     *slog.Logger
}

func NewRelatorioService(storage RelatorioStorage, log *slog.Logger) *RelatorioService {
	return &RelatorioService{storage: storage, log: log}
}

// snapshot é a foto imutável das coleções que um tipo de relatório consome.
type snapshot struct {
	apontamentos []*storage.Apontamento
	paradas      []*storage.Parada
	lotes        []*storage.Lote
	ferramentas  []*storage.FerramentaCfg
	maquinas     []*storage.Maquina
	overrides    map[string]map[string]string
}

// Montar recalcula o relatório pedido a partir do snapshot atual. As
// transformações são puras; chamadas repetidas com as mesmas coleções e o
// mesmo filtro produzem o mesmo resultado.
func (s *RelatorioService) Montar(ctx context.Context, f report.Filtro) ([]*report.Row, error) {
	const op = "service.relatorio.Montar"

	if _, ok := constants.NomesRelatorio[f.Tipo]; !ok {
		return nil, fmt.Errorf("%s: tipo de relatório desconhecido: %q", op, f.Tipo)
	}

	snap, err := s.carregar(ctx, f.Tipo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	maq := report.MapaMaquinas(snap.maquinas)
	aps := report.FiltrarApontamentos(snap.apontamentos, f)

	switch f.Tipo {
	case constants.RelatorioProducao:
		return report.LinhasProducao(aps, maq), nil

	case constants.RelatorioParadas:
		paradas := report.FiltrarParadas(report.NormalizarParadas(snap.paradas), f)
		return report.LinhasParadas(paradas, maq), nil

	case constants.RelatorioDesempenho:
		return report.LinhasDesempenho(aps, maq), nil

	case constants.RelatorioOEE:
		paradas := report.FiltrarParadas(report.NormalizarParadas(snap.paradas), f)
		return report.LinhasOEE(aps, paradas, maq), nil

	case constants.RelatorioExpedicao:
		cfg := make(map[string]*storage.FerramentaCfg, len(snap.ferramentas))
		for _, c := range snap.ferramentas {
			if c != nil && c.Ferramenta != "" {
				cfg[c.Ferramenta] = c
			}
		}
		return report.LinhasExpedicao(aps, cfg), nil

	case constants.RelatorioProdutividade:
		return report.LinhasProdutividade(aps, snap.overrides), nil

	case constants.RelatorioRastreabilidade:
		linhas := report.LinhasRastreabilidade(aps, snap.lotes, maq)
		if f.Modo == constants.ModoCompacto {
			linhas = report.CompactarRastreabilidade(linhas)
		}
		return linhas, nil
	}

	return nil, fmt.Errorf("%s: tipo de relatório desconhecido: %q", op, f.Tipo)
}

// Exportar monta o relatório e o serializa em CSV, devolvendo também o nome
// de arquivo sugerido.
func (s *RelatorioService) Exportar(ctx context.Context, f report.Filtro) ([]byte, string, error) {
	linhas, err := s.Montar(ctx, f)
	if err != nil {
		return nil, "", err
	}
	blob, err := report.ExportarCSV(linhas)
	if err != nil {
		// ErrSemDados sobe sem embrulho: é a condição visível ao usuário.
		return nil, "", err
	}
	return blob, report.NomeArquivo(f.Tipo, f.Modo, time.Now()), nil
}

// carregar busca, em paralelo, apenas as coleções que o tipo de relatório
// usa.
func (s *RelatorioService) carregar(ctx context.Context, tipo string) (*snapshot, error) {
	snap := &snapshot{overrides: map[string]map[string]string{}}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.apontamentos, err = s.storage.GetApontamentos(gCtx)
		if err != nil {
			return fmt.Errorf("apontamentos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		snap.maquinas, err = s.storage.GetMaquinas(gCtx)
		if err != nil {
			return fmt.Errorf("maquinas: %w", err)
		}
		return nil
	})

	switch tipo {
	case constants.RelatorioParadas, constants.RelatorioOEE:
		g.Go(func() error {
			var err error
			snap.paradas, err = s.storage.GetParadas(gCtx)
			if err != nil {
				return fmt.Errorf("paradas: %w", err)
			}
			return nil
		})
	case constants.RelatorioExpedicao:
		g.Go(func() error {
			var err error
			snap.ferramentas, err = s.storage.GetFerramentasCfg(gCtx)
			if err != nil {
				return fmt.Errorf("ferramentas_cfg: %w", err)
			}
			return nil
		})
	case constants.RelatorioRastreabilidade:
		g.Go(func() error {
			var err error
			snap.lotes, err = s.storage.GetLotes(gCtx)
			if err != nil {
				return fmt.Errorf("lotes: %w", err)
			}
			return nil
		})
	case constants.RelatorioProdutividade:
		g.Go(func() error {
			overrides, err := s.storage.GetOverrides(gCtx)
			if err != nil {
				// Armazenamento de ajustes ausente/corrompido degrada para
				// mapa vazio; o relatório sai sem os ajustes manuais.
				s.log.Warn("falha ao carregar overrides, seguindo sem ajustes",
					slog.String("error", err.Error()))
				return nil
			}
			snap.overrides = overrides
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

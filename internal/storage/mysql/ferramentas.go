package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

// GetFerramentasCfg devolve o catálogo de configuração de embalagem.
func (s *Storage) GetFerramentasCfg(ctx context.Context) ([]*storage.FerramentaCfg, error) {
	const op = "storage.mysql.GetFerramentasCfg"

	rows, err := s.db.QueryContext(ctx, `
		SELECT ferramenta, embalagem, comprimento_mm, peso_linear,
		       pcs_por_pallet, ripas_por_pallet, pcs_por_caixa
		FROM ferramentas_cfg
		ORDER BY ferramenta ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var cfgs []*storage.FerramentaCfg
	for rows.Next() {
		var (
			ferramenta, embalagem                     sql.NullString
			comprimento, pesoLinear                   sql.NullString
			pcsPorPallet, ripasPorPallet, pcsPorCaixa sql.NullString
		)
		err := rows.Scan(&ferramenta, &embalagem, &comprimento, &pesoLinear,
			&pcsPorPallet, &ripasPorPallet, &pcsPorCaixa)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		cfgs = append(cfgs, &storage.FerramentaCfg{
			Ferramenta:     texto(ferramenta),
			Embalagem:      texto(embalagem),
			ComprimentoMM:  numero(comprimento),
			PesoLinear:     numero(pesoLinear),
			PcsPorPallet:   numero(pcsPorPallet),
			RipasPorPallet: numero(ripasPorPallet),
			PcsPorCaixa:    numero(pcsPorCaixa),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cfgs, nil
}

// UpsertFerramentaCfg grava/atualiza uma configuração (painel admin).
func (s *Storage) UpsertFerramentaCfg(ctx context.Context, cfg storage.FerramentaCfg) error {
	const op = "storage.mysql.UpsertFerramentaCfg"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ferramentas_cfg
			(ferramenta, embalagem, comprimento_mm, peso_linear,
			 pcs_por_pallet, ripas_por_pallet, pcs_por_caixa)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			embalagem = VALUES(embalagem),
			comprimento_mm = VALUES(comprimento_mm),
			peso_linear = VALUES(peso_linear),
			pcs_por_pallet = VALUES(pcs_por_pallet),
			ripas_por_pallet = VALUES(ripas_por_pallet),
			pcs_por_caixa = VALUES(pcs_por_caixa)`,
		cfg.Ferramenta, cfg.Embalagem, cfg.ComprimentoMM, cfg.PesoLinear,
		cfg.PcsPorPallet, cfg.RipasPorPallet, cfg.PcsPorCaixa,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

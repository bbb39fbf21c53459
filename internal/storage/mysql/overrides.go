package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

// Override Store: ajustes manuais de produtividade, chaveados pela
// identidade do grupo (ferramenta__comprimento) e gravados campo a campo.
// Escritas são merges — gravar um campo preserva os irmãos da mesma chave.
// Duas sessões concorrentes podem se sobrescrever por campo; o último a
// gravar vence, limitação aceita do armazenamento compartilhado.

// GetOverrides carrega todos os ajustes: chave → campo → valor.
func (s *Storage) GetOverrides(ctx context.Context) (map[string]map[string]string, error) {
	const op = "storage.mysql.GetOverrides"

	rows, err := s.db.QueryContext(ctx, `SELECT chave, campo, valor FROM relatorio_overrides`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	overrides := make(map[string]map[string]string)
	for rows.Next() {
		var chave, campo, valor sql.NullString
		if err := rows.Scan(&chave, &campo, &valor); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		k := texto(chave)
		if k == "" {
			continue
		}
		if overrides[k] == nil {
			overrides[k] = make(map[string]string)
		}
		overrides[k][texto(campo)] = texto(valor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return overrides, nil
}

// MergeOverride grava um campo de uma chave sem tocar nos demais.
func (s *Storage) MergeOverride(ctx context.Context, chave, campo, valor string) error {
	const op = "storage.mysql.MergeOverride"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO relatorio_overrides (chave, campo, valor)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE valor = VALUES(valor)`,
		chave, campo, valor,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetFlags carrega as marcações de "apontado no segundo sistema" por
// identidade de linha.
func (s *Storage) GetFlags(ctx context.Context) (map[string]bool, error) {
	const op = "storage.mysql.GetFlags"

	rows, err := s.db.QueryContext(ctx, `SELECT row_id, marcado FROM relatorio_flags`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	flags := make(map[string]bool)
	for rows.Next() {
		var rowID sql.NullString
		var marcado bool
		if err := rows.Scan(&rowID, &marcado); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if id := texto(rowID); id != "" {
			flags[id] = marcado
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return flags, nil
}

// SetFlag grava a marcação de uma linha.
func (s *Storage) SetFlag(ctx context.Context, rowID string, marcado bool) error {
	const op = "storage.mysql.SetFlag"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO relatorio_flags (row_id, marcado)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE marcado = VALUES(marcado)`,
		rowID, marcado,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

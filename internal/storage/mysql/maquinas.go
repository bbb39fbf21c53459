package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

// GetMaquinas devolve o catálogo de máquinas.
func (s *Storage) GetMaquinas(ctx context.Context) ([]*storage.Maquina, error) {
	const op = "storage.mysql.GetMaquinas"

	rows, err := s.db.QueryContext(ctx, `SELECT id, nome, codigo FROM maquinas ORDER BY nome ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var maquinas []*storage.Maquina
	for rows.Next() {
		var id, nome, codigo sql.NullString
		if err := rows.Scan(&id, &nome, &codigo); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		maquinas = append(maquinas, &storage.Maquina{
			ID:     texto(id),
			Nome:   texto(nome),
			Codigo: texto(codigo),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return maquinas, nil
}

// GetOperadores devolve os nomes distintos de operador presentes nos
// apontamentos (fonte do filtro da tela).
func (s *Storage) GetOperadores(ctx context.Context) ([]string, error) {
	const op = "storage.mysql.GetOperadores"

	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT operador FROM apontamentos
		WHERE operador IS NOT NULL AND operador <> ''
		ORDER BY operador ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var operadores []string
	for rows.Next() {
		var operador sql.NullString
		if err := rows.Scan(&operador); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if nome := texto(operador); nome != "" {
			operadores = append(operadores, nome)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return operadores, nil
}

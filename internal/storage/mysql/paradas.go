package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

// GetParadas devolve as paradas brutas, com as colunas legadas lado a lado.
// A normalização das grafias fica no motor de relatórios.
func (s *Storage) GetParadas(ctx context.Context) ([]*storage.Parada, error) {
	const op = "storage.mysql.GetParadas"

	rows, err := s.db.QueryContext(ctx, `
		SELECT maquina, inicio, inicio_timestamp, fim, fim_timestamp,
		       motivo_parada, motivo_parada_legado, tipo_parada, tipo_parada_legado
		FROM apontamentos_parada`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var paradas []*storage.Parada
	for rows.Next() {
		var (
			maquina, inicio, inicioTS, fim, fimTS  sql.NullString
			motivo, motivoLegado, tipo, tipoLegado sql.NullString
		)
		err := rows.Scan(&maquina, &inicio, &inicioTS, &fim, &fimTS,
			&motivo, &motivoLegado, &tipo, &tipoLegado)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		paradas = append(paradas, &storage.Parada{
			Maquina:            texto(maquina),
			Inicio:             data(inicio),
			InicioTimestamp:    data(inicioTS),
			Fim:                data(fim),
			FimTimestamp:       data(fimTS),
			MotivoParada:       texto(motivo),
			MotivoParadaLegado: texto(motivoLegado),
			TipoParada:         texto(tipo),
			TipoParadaLegado:   texto(tipoLegado),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return paradas, nil
}

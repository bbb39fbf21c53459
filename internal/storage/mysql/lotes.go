package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

// GetLotes devolve o catálogo de lotes importado do sistema de expedição.
func (s *Storage) GetLotes(ctx context.Context) ([]*storage.Lote, error) {
	const op = "storage.mysql.GetLotes"

	rows, err := s.db.QueryContext(ctx, `
		SELECT codigo, lote, produto, rack_embalagem, pedido_seq, romaneio,
		       qt_kg, qtd_pc, dados_originais
		FROM lotes`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var lotes []*storage.Lote
	for rows.Next() {
		var (
			codigo, lote, produto, rack, pedidoSeq, romaneio sql.NullString
			qtKG, qtdPC, dadosOriginais                      sql.NullString
		)
		err := rows.Scan(&codigo, &lote, &produto, &rack, &pedidoSeq, &romaneio,
			&qtKG, &qtdPC, &dadosOriginais)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		l := &storage.Lote{
			Codigo:        texto(codigo),
			Lote:          texto(lote),
			Produto:       texto(produto),
			RackEmbalagem: texto(rack),
			PedidoSeq:     texto(pedidoSeq),
			Romaneio:      texto(romaneio),
			QtKG:          numero(qtKG),
			QtdPC:         numero(qtdPC),
		}
		if s := texto(dadosOriginais); s != "" {
			_ = json.Unmarshal([]byte(s), &l.DadosOriginais)
		}
		lotes = append(lotes, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return lotes, nil
}

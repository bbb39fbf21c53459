package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

// GetPedidos devolve os pedidos acompanhados pelo dashboard.
func (s *Storage) GetPedidos(ctx context.Context) ([]*storage.Pedido, error) {
	const op = "storage.mysql.GetPedidos"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, pedido_seq, nro_op, produto, qtd_pedido, separado, status, operacao_atual
		FROM pedidos`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var pedidos []*storage.Pedido
	for rows.Next() {
		var (
			id, pedidoSeq, nroOP, produto, status, operacaoAtual sql.NullString
			qtdPedido, separado                                  sql.NullString
		)
		err := rows.Scan(&id, &pedidoSeq, &nroOP, &produto, &qtdPedido, &separado, &status, &operacaoAtual)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		pedidos = append(pedidos, &storage.Pedido{
			ID:            texto(id),
			PedidoSeq:     texto(pedidoSeq),
			NroOP:         texto(nroOP),
			Produto:       texto(produto),
			QtdPedido:     numero(qtdPedido),
			Separado:      numero(separado),
			Status:        texto(status),
			OperacaoAtual: texto(operacaoAtual),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return pedidos, nil
}

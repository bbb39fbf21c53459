package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

const colunasApontamento = `id, inicio, fim, maquina, operador, produto, codigo_perfil,
	quantidade, qtd_refugo, ordem_trabalho, pedido_seq, pedido_seq_legado,
	pedido, numero_pedido, seq, sequencia, lote, rack_ou_pallet,
	qtd_pedido, separado, cliente, perfil_longo, pedido_cliente,
	comprimento_acabado_mm, amarrados_detalhados, lotes_externos, lote_externo`

// GetApontamentos devolve o snapshot completo da coleção de apontamentos.
func (s *Storage) GetApontamentos(ctx context.Context) ([]*storage.Apontamento, error) {
	const op = "storage.mysql.GetApontamentos"

	rows, err := s.db.QueryContext(ctx, `SELECT `+colunasApontamento+` FROM apontamentos`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var aps []*storage.Apontamento
	for rows.Next() {
		a, err := lerApontamento(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		aps = append(aps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return aps, nil
}

// GetApontamento busca um apontamento pela identidade (formulário de
// identificação).
func (s *Storage) GetApontamento(ctx context.Context, id string) (*storage.Apontamento, error) {
	const op = "storage.mysql.GetApontamento"

	row := s.db.QueryRowContext(ctx, `SELECT `+colunasApontamento+` FROM apontamentos WHERE id = ?`, id)
	a, err := lerApontamento(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNaoEncontrado)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

type linha interface {
	Scan(dest ...any) error
}

func lerApontamento(r linha) (*storage.Apontamento, error) {
	var (
		id, inicio, fim, maquina, operador           sql.NullString
		produto, codigoPerfil                        sql.NullString
		quantidade, qtdRefugo                        sql.NullString
		ordemTrabalho, pedidoSeq, pedidoSeqLegado    sql.NullString
		pedido, numeroPedido, seq, sequencia         sql.NullString
		lote, rackOuPallet                           sql.NullString
		qtdPedido, separado                          sql.NullString
		cliente, perfilLongo, pedidoCliente          sql.NullString
		comprimentoAcabado, amarrados, lotesExternos sql.NullString
		loteExterno                                  sql.NullString
	)
	err := r.Scan(
		&id, &inicio, &fim, &maquina, &operador, &produto, &codigoPerfil,
		&quantidade, &qtdRefugo, &ordemTrabalho, &pedidoSeq, &pedidoSeqLegado,
		&pedido, &numeroPedido, &seq, &sequencia, &lote, &rackOuPallet,
		&qtdPedido, &separado, &cliente, &perfilLongo, &pedidoCliente,
		&comprimentoAcabado, &amarrados, &lotesExternos, &loteExterno,
	)
	if err != nil {
		return nil, err
	}

	a := &storage.Apontamento{
		ID:                   texto(id),
		Inicio:               data(inicio),
		Fim:                  data(fim),
		Maquina:              texto(maquina),
		Operador:             texto(operador),
		Produto:              texto(produto),
		CodigoPerfil:         texto(codigoPerfil),
		Quantidade:           numero(quantidade),
		QtdRefugo:            numero(qtdRefugo),
		OrdemTrabalho:        texto(ordemTrabalho),
		PedidoSeq:            texto(pedidoSeq),
		PedidoSeqLegado:      texto(pedidoSeqLegado),
		Pedido:               texto(pedido),
		NumeroPedido:         texto(numeroPedido),
		Seq:                  texto(seq),
		Sequencia:            texto(sequencia),
		Lote:                 texto(lote),
		RackOuPallet:         texto(rackOuPallet),
		QtdPedido:            numeroOpcional(qtdPedido),
		Separado:             numeroOpcional(separado),
		Cliente:              texto(cliente),
		PerfilLongo:          texto(perfilLongo),
		PedidoCliente:        texto(pedidoCliente),
		ComprimentoAcabadoMM: numeroOpcional(comprimentoAcabado),
		LoteExterno:          texto(loteExterno),
	}

	// Colunas JSON preenchidas pela captura; conteúdo inválido é ignorado.
	if s := texto(amarrados); s != "" {
		_ = json.Unmarshal([]byte(s), &a.Amarrados)
	}
	if s := texto(lotesExternos); s != "" {
		_ = json.Unmarshal([]byte(s), &a.LotesExternos)
	}
	return a, nil
}

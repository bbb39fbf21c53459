package storage

import "errors"

// ErrNaoEncontrado indica que um registro pedido por identidade não existe.
var ErrNaoEncontrado = errors.New("registro não encontrado")

// Pedido é um pedido de cliente acompanhado pelo dashboard.
type Pedido struct {
	ID            string  `json:"id"`
	PedidoSeq     string  `json:"pedido_seq"`
	NroOP         string  `json:"nro_op"`
	Produto       string  `json:"produto"`
	QtdPedido     float64 `json:"qtd_pedido"`
	Separado      float64 `json:"separado"`
	Status        string  `json:"status"`
	OperacaoAtual string  `json:"operacao_atual"`
}

// Concluido segue a regra de separação: concluído quando o separado atingiu
// a quantidade pedida.
func (p *Pedido) Concluido() bool {
	return p.QtdPedido > 0 && p.Separado >= p.QtdPedido
}

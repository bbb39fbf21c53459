package storage

import "time"

// Amarrado é um sub-registro embutido no apontamento: um volume físico
// (feixe/amarrado) vinculado a um lote e a uma unidade de embalagem.
type Amarrado struct {
	Codigo    string  `json:"codigo"`
	Lote      string  `json:"lote"`
	Rack      string  `json:"rack"`
	Produto   string  `json:"produto"`
	PedidoSeq string  `json:"pedido_seq"`
	Romaneio  string  `json:"romaneio"`
	QtKG      float64 `json:"qt_kg"`
	QtdPC     float64 `json:"qtd_pc"`
}

// Apontamento é um registro de produção concluída. Criado pelo processo de
// captura no chão de fábrica; o motor de relatórios apenas lê.
//
// Vários campos legados podem estar preenchidos no lugar do canônico
// (ordem_trabalho x pedido_seq x pedido+seq) — a precedência de exibição
// fica em internal/report.
type Apontamento struct {
	ID       string     `json:"id"`
	Inicio   *time.Time `json:"inicio"`
	Fim      *time.Time `json:"fim"`
	Maquina  string     `json:"maquina"`
	Operador string     `json:"operador"`

	Produto      string `json:"produto"`
	CodigoPerfil string `json:"codigo_perfil"` // alias legado de Produto

	Quantidade float64 `json:"quantidade"`
	QtdRefugo  float64 `json:"qtd_refugo"`

	OrdemTrabalho   string `json:"ordem_trabalho"`
	PedidoSeq       string `json:"pedido_seq"` // alias legado
	PedidoSeqLegado string `json:"pedidoSeq"`  // alias legado (grafia antiga)
	Pedido          string `json:"pedido"`
	NumeroPedido    string `json:"numero_pedido"`
	Seq             string `json:"seq"`
	Sequencia       string `json:"sequencia"`

	Lote         string `json:"lote"`
	RackOuPallet string `json:"rack_ou_pallet"`

	// Progresso do pedido (usado no dashboard, não nos relatórios).
	QtdPedido *float64 `json:"qtd_pedido"`
	Separado  *float64 `json:"separado"`

	// Campos do formulário de identificação.
	Cliente              string   `json:"cliente"`
	PerfilLongo          string   `json:"perfil_longo"`
	PedidoCliente        string   `json:"pedido_cliente"`
	ComprimentoAcabadoMM *float64 `json:"comprimento_acabado_mm"`

	Amarrados     []Amarrado `json:"amarrados_detalhados"`
	LotesExternos []string   `json:"lotes_externos"`
	LoteExterno   string     `json:"lote_externo"` // forma singular legada
}

// CodigoProduto resolve o código de produto entre o campo canônico e o alias.
func (a *Apontamento) CodigoProduto() string {
	if a.Produto != "" {
		return a.Produto
	}
	return a.CodigoPerfil
}

// LotesExternosResolvidos junta a forma plural e a singular legada.
func (a *Apontamento) LotesExternosResolvidos() []string {
	if len(a.LotesExternos) > 0 {
		return a.LotesExternos
	}
	if a.LoteExterno != "" {
		return []string{a.LoteExterno}
	}
	return nil
}

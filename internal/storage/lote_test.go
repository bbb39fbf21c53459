package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampoOriginal_IgnoraCaixaEPontuacao(t *testing.T) {
	l := &Lote{DadosOriginais: map[string]any{
		"Pedido/Seq": "100/1",
		"QT KG":      32.5,
		"vazio":      nil,
	}}

	assert.Equal(t, "100/1", l.CampoOriginal("pedido_seq"))
	assert.Equal(t, "100/1", l.CampoOriginal("PedidoSeq"))
	assert.Equal(t, "32.5", l.CampoOriginal("qt_kg"))
	assert.Equal(t, "", l.CampoOriginal("vazio"))
	assert.Equal(t, "", l.CampoOriginal("inexistente"))

	var nulo *Lote
	assert.Equal(t, "", nulo.CampoOriginal("qualquer"))
}

func TestApontamento_CodigoProduto(t *testing.T) {
	assert.Equal(t, "TR0805", (&Apontamento{Produto: "TR0805", CodigoPerfil: "antigo"}).CodigoProduto())
	assert.Equal(t, "antigo", (&Apontamento{CodigoPerfil: "antigo"}).CodigoProduto())
	assert.Equal(t, "", (&Apontamento{}).CodigoProduto())
}

func TestApontamento_LotesExternosResolvidos(t *testing.T) {
	plural := &Apontamento{LotesExternos: []string{"L1", "L2"}, LoteExterno: "L9"}
	assert.Equal(t, []string{"L1", "L2"}, plural.LotesExternosResolvidos())

	singular := &Apontamento{LoteExterno: "L9"}
	assert.Equal(t, []string{"L9"}, singular.LotesExternosResolvidos())

	assert.Nil(t, (&Apontamento{}).LotesExternosResolvidos())
}

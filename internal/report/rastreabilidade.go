package report

import (
	"strings"

	"github.com/danilocardosoweb/ControleUsinagem/internal/datas"
	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

// colunasAmarrado são as colunas concatenadas pelo modo compacto. As demais
// colunas da linha base mantêm o valor da primeira ocorrência do grupo.
var colunasAmarrado = []string{
	"Amarrado_Codigo",
	"Amarrado_Lote",
	"Amarrado_Rack",
	"Amarrado_Produto",
	"Amarrado_Ferramenta",
	"Amarrado_Comprimento_mm",
	"Amarrado_PedidoSeq",
	"Amarrado_Pedido",
	"Amarrado_Seq",
	"Amarrado_Romaneio",
	"Amarrado_QtKG",
	"Amarrado_QtdPC",
}

// LinhasRastreabilidade explode cada apontamento em uma-ou-mais linhas:
// uma por amarrado embutido; na falta deles, uma por lote externo
// referenciado (resolvido no catálogo de lotes); e, sem nenhum dos dois,
// a própria linha base. Um apontamento nunca é descartado em silêncio.
func LinhasRastreabilidade(aps []*storage.Apontamento, lotes []*storage.Lote, maq map[string]string) []*Row {
	porLote := make(map[string]*storage.Lote, len(lotes))
	for _, l := range lotes {
		if l == nil {
			continue
		}
		if numero := strings.TrimSpace(l.Lote); numero != "" {
			if _, ok := porLote[numero]; !ok {
				porLote[numero] = l
			}
		}
	}

	var linhas []*Row
	for _, a := range OrdenarPorInicioDesc(aps) {
		base := linhaBaseRastreabilidade(a, maq)

		if len(a.Amarrados) > 0 {
			for _, am := range a.Amarrados {
				linhas = append(linhas, linhaDeAmarrado(base, am))
			}
			continue
		}

		lotesExt := a.LotesExternosResolvidos()
		if len(lotesExt) == 0 {
			linhas = append(linhas, base.Clone())
			continue
		}
		for _, numero := range lotesExt {
			linhas = append(linhas, linhaDeLote(base, porLote[strings.TrimSpace(numero)]))
		}
	}
	return linhas
}

func linhaBaseRastreabilidade(a *storage.Apontamento, maq map[string]string) *Row {
	r := NewRow()
	r.Set("ID_Apont", a.ID)
	r.Set("Data", datas.DataBR(a.Inicio))
	r.Set("Hora", datas.HoraBR(a.Inicio))
	r.Set("Maquina", nomeMaquina(maq, a.Maquina))
	r.Set("Operador", ouTraco(a.Operador))
	r.Set("PedidoSeq", PedidoSeqExibicao(a))
	r.Set("Produto_Usinagem", ouTraco(a.CodigoProduto()))
	r.Set("Lote_Usinagem", ouTraco(a.Lote))
	r.Set("Qtde_Produzida", a.Quantidade)
	r.Set("Qtde_Refugo", a.QtdRefugo)
	r.Set("RackOuPallet", ouTraco(a.RackOuPallet))
	r.Set("LotesExternos", strings.Join(a.LotesExternosResolvidos(), ", "))
	return r
}

func linhaDeAmarrado(base *Row, am storage.Amarrado) *Row {
	r := base.Clone()
	pedido, seq := separarPedidoSeq(am.PedidoSeq)
	r.Set("Amarrado_Codigo", am.Codigo)
	r.Set("Amarrado_Lote", am.Lote)
	r.Set("Amarrado_Rack", am.Rack)
	r.Set("Amarrado_Produto", am.Produto)
	r.Set("Amarrado_Ferramenta", ExtrairFerramenta(am.Produto))
	r.Set("Amarrado_Comprimento_mm", ExtrairComprimentoAcabado(am.Produto))
	r.Set("Amarrado_PedidoSeq", am.PedidoSeq)
	r.Set("Amarrado_Pedido", pedido)
	r.Set("Amarrado_Seq", seq)
	r.Set("Amarrado_Romaneio", am.Romaneio)
	r.Set("Amarrado_QtKG", am.QtKG)
	r.Set("Amarrado_QtdPC", am.QtdPC)
	return r
}

// linhaDeLote preenche as colunas de amarrado a partir do catálogo de lotes.
// Lote não encontrado rende a linha com as colunas vazias.
func linhaDeLote(base *Row, l *storage.Lote) *Row {
	r := base.Clone()
	if l == nil {
		for _, coluna := range colunasAmarrado {
			r.Set(coluna, "")
		}
		return r
	}

	produto := strings.TrimSpace(primeiroTexto(l.Produto, l.CampoOriginal("Produto")))
	pedidoSeq := strings.TrimSpace(l.PedidoSeq)
	pedido, seq := separarPedidoSeq(pedidoSeq)

	r.Set("Amarrado_Codigo", strings.TrimSpace(l.Codigo))
	r.Set("Amarrado_Lote", strings.TrimSpace(l.Lote))
	r.Set("Amarrado_Rack", strings.TrimSpace(l.RackEmbalagem))
	r.Set("Amarrado_Produto", produto)
	r.Set("Amarrado_Ferramenta", ExtrairFerramenta(produto))
	r.Set("Amarrado_Comprimento_mm", ExtrairComprimentoAcabado(produto))
	r.Set("Amarrado_PedidoSeq", pedidoSeq)
	r.Set("Amarrado_Pedido", pedido)
	r.Set("Amarrado_Seq", seq)
	r.Set("Amarrado_Romaneio", strings.TrimSpace(l.Romaneio))
	r.Set("Amarrado_QtKG", zeroVazio(l.QtKG))
	r.Set("Amarrado_QtdPC", zeroVazio(l.QtdPC))
	return r
}

// CompactarRastreabilidade agrupa as linhas explodidas pela identidade do
// apontamento de origem, concatenando os valores de amarrado em listas
// separadas por vírgula, sem duplicatas e preservando a ordem. Compactar um
// resultado já compacto não muda nada.
func CompactarRastreabilidade(linhas []*Row) []*Row {
	var ordem []string
	grupos := make(map[string]*Row)
	for _, r := range linhas {
		chave := r.GetString("ID_Apont")
		g, ok := grupos[chave]
		if !ok {
			grupos[chave] = r.Clone()
			ordem = append(ordem, chave)
			continue
		}
		for _, coluna := range colunasAmarrado {
			_, temAtual := g.Get(coluna)
			_, temNovo := r.Get(coluna)
			if !temAtual && !temNovo {
				continue
			}
			g.Set(coluna, concatenarUnico(g.GetString(coluna), r.GetString(coluna)))
		}
	}

	out := make([]*Row, 0, len(ordem))
	for _, chave := range ordem {
		out = append(out, grupos[chave])
	}
	return out
}

// concatenarUnico une duas listas "a, b" descartando vazios e duplicatas,
// mantendo a ordem da primeira aparição.
func concatenarUnico(a, b string) string {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	var partes []string
	visto := make(map[string]bool)
	for _, parte := range append(strings.Split(a, ", "), strings.Split(b, ", ")...) {
		if parte == "" || visto[parte] {
			continue
		}
		visto[parte] = true
		partes = append(partes, parte)
	}
	return strings.Join(partes, ", ")
}

func separarPedidoSeq(pedidoSeq string) (pedido, seq string) {
	if i := strings.Index(pedidoSeq, "/"); i >= 0 {
		return pedidoSeq[:i], pedidoSeq[i+1:]
	}
	return pedidoSeq, ""
}

func zeroVazio(v float64) any {
	if v == 0 {
		return ""
	}
	return v
}

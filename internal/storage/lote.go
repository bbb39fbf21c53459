package storage

import (
	"fmt"
	"strings"
)

// Lote é uma entrada do catálogo externo de lotes, usada para resolver os
// dados do amarrado quando o apontamento só referencia números de lote.
type Lote struct {
	Codigo        string  `json:"codigo"`
	Lote          string  `json:"lote"`
	Produto       string  `json:"produto"`
	RackEmbalagem string  `json:"rack_embalagem"`
	PedidoSeq     string  `json:"pedido_seq"`
	Romaneio      string  `json:"romaneio"`
	QtKG          float64 `json:"qt_kg"`
	QtdPC         float64 `json:"qtd_pc"`

	// Campos originais da planilha de importação, consultados apenas quando
	// o campo canônico está em branco.
	DadosOriginais map[string]any `json:"dados_originais"`
}

// CampoOriginal busca um campo em DadosOriginais ignorando caixa e pontuação
// ("Pedido/Seq" casa com "pedido_seq").
func (l *Lote) CampoOriginal(campo string) string {
	if l == nil || len(l.DadosOriginais) == 0 {
		return ""
	}
	alvo := normalizarChave(campo)
	for k, v := range l.DadosOriginais {
		if normalizarChave(k) == alvo {
			switch x := v.(type) {
			case nil:
				return ""
			case string:
				return x
			default:
				return fmt.Sprint(x)
			}
		}
	}
	return ""
}

func normalizarChave(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Package datas concentra o tratamento de data/hora dos relatórios:
// parse tolerante, renderização pt-BR e duração em minutos.
//
// Falhas de parse nunca viram erro — datas inválidas rendem nil/vazio e o
// restante do relatório segue em frente.
package datas

import (
	"math"
	"strings"
	"time"
)

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

// Parse tenta os formatos conhecidos na ordem; nil quando nenhum casa.
func Parse(valor string) *time.Time {
	valor = strings.TrimSpace(valor)
	if valor == "" {
		return nil
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, valor); err == nil {
			return &t
		}
	}
	return nil
}

// ISO devolve a data no formato yyyy-mm-dd, vazio para nil.
func ISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// ISODe faz parse tolerante e devolve a data ISO ("" quando inválida).
func ISODe(valor string) string {
	return ISO(Parse(valor))
}

// DataBR renderiza dd/mm/aaaa, vazio para nil.
func DataBR(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

// HoraBR renderiza hh:mm, vazio para nil.
func HoraBR(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}

// DataHoraBR renderiza dd/mm/aaaa hh:mm:ss, vazio para nil.
func DataHoraBR(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006 15:04:05")
}

// DuracaoMin devolve os minutos arredondados entre início e fim, nil quando
// qualquer extremo falta. Diferenças negativas são truncadas em zero.
func DuracaoMin(inicio, fim *time.Time) *int {
	if inicio == nil || fim == nil {
		return nil
	}
	m := int(math.Round(fim.Sub(*inicio).Minutes()))
	if m < 0 {
		m = 0
	}
	return &m
}

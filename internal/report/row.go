// Package report implementa o motor de agregação e rastreabilidade dos
// relatórios: parser do código de produto, filtros, as sete projeções,
// a explosão de rastreabilidade e a serialização CSV.
//
// Todas as transformações são funções puras sobre snapshots imutáveis das
// coleções; entradas malformadas degradam para valores vazios/zero em vez
// de abortar o relatório.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Row é uma linha de relatório: um mapeamento chave→valor que preserva a
// ordem de inserção das chaves. Os tipos de relatório produzem conjuntos de
// colunas diferentes, então as chaves variam por linha.
type Row struct {
	chaves  []string
	valores map[string]any
}

func NewRow() *Row {
	return &Row{valores: make(map[string]any)}
}

// Set grava um valor; a posição da chave é a da primeira gravação.
func (r *Row) Set(chave string, valor any) {
	if _, ok := r.valores[chave]; !ok {
		r.chaves = append(r.chaves, chave)
	}
	r.valores[chave] = valor
}

func (r *Row) Get(chave string) (any, bool) {
	v, ok := r.valores[chave]
	return v, ok
}

// GetString devolve o valor renderizado como texto ("" quando ausente).
func (r *Row) GetString(chave string) string {
	v, ok := r.valores[chave]
	if !ok {
		return ""
	}
	return Render(v)
}

// Chaves devolve as chaves na ordem de inserção.
func (r *Row) Chaves() []string {
	return r.chaves
}

func (r *Row) Clone() *Row {
	c := &Row{
		chaves:  append([]string(nil), r.chaves...),
		valores: make(map[string]any, len(r.valores)),
	}
	for k, v := range r.valores {
		c.valores[k] = v
	}
	return c
}

// Render converte um valor de célula para texto. nil vira vazio; números
// saem sem zeros à direita supérfluos.
func Render(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// MarshalJSON preserva a ordem das colunas na visualização prévia.
func (r *Row) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range r.chaves {
		if i > 0 {
			b.WriteByte(',')
		}
		chave, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(chave)
		b.WriteByte(':')
		valor, err := json.Marshal(r.valores[k])
		if err != nil {
			return nil, err
		}
		b.Write(valor)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtrairFerramenta_TresLetras(t *testing.T) {
	// Prefixo de 3 letras pede 3 dígitos
	assert.Equal(t, "ABC-123", ExtrairFerramenta("ABC123XYZ"))
	assert.Equal(t, "ABC-123", ExtrairFerramenta("abc123"))
}

func TestExtrairFerramenta_DuasLetras(t *testing.T) {
	// Prefixo de 2 letras pede 4 dígitos
	assert.Equal(t, "TR-0805", ExtrairFerramenta("TR0805123"))
	assert.Equal(t, "AB-1234", ExtrairFerramenta("AB1234"))
}

func TestExtrairFerramenta_LetraOViraZero(t *testing.T) {
	assert.Equal(t, "ABC-012", ExtrairFerramenta("ABCO12"))
	// O conta como letra no prefixo: ABO casa a alternativa de 3 letras e
	// só os O do restante viram zero
	assert.Equal(t, "ABO-012", ExtrairFerramenta("ABOO12"))
	assert.Equal(t, "AB-0012", ExtrairFerramenta("AB0O12"))
}

func TestExtrairFerramenta_CompletaComZeros(t *testing.T) {
	// Dígitos de menos no restante completam com zeros à direita
	assert.Equal(t, "AB-1200", ExtrairFerramenta("AB12"))
	assert.Equal(t, "ABC-100", ExtrairFerramenta("ABC1"))
}

func TestExtrairFerramenta_PulaNaoDigitos(t *testing.T) {
	// Caracteres não numéricos no meio do restante são ignorados
	assert.Equal(t, "AB-1230", ExtrairFerramenta("ABC-123"))
	assert.Equal(t, "ABC-123", ExtrairFerramenta("ABC1X23"))
}

func TestExtrairFerramenta_SemCasamento(t *testing.T) {
	assert.Equal(t, "", ExtrairFerramenta(""))
	assert.Equal(t, "", ExtrairFerramenta("123ABC"))
	assert.Equal(t, "", ExtrairFerramenta("A1"))
	assert.Equal(t, "", ExtrairFerramenta("AB"))
}

func TestExtrairComprimentoAcabado(t *testing.T) {
	assert.Equal(t, "850 mm", ExtrairComprimentoAcabado("ABCDEFGH0850X"))
	assert.Equal(t, "6000 mm", ExtrairComprimentoAcabado("TR0805AB6000"))
	assert.Equal(t, "", ExtrairComprimentoAcabado("TR080512 6000")) // espaço na posição corta a leitura
	assert.Equal(t, "", ExtrairComprimentoAcabado("SHORT"))
	assert.Equal(t, "", ExtrairComprimentoAcabado("EXATOS88"))
	assert.Equal(t, "", ExtrairComprimentoAcabado("ABCDEFGHXX850"))
}

package report

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/danilocardosoweb/ControleUsinagem/internal/constants"
)

func TestExportarCSV_Vazio(t *testing.T) {
	blob, err := ExportarCSV(nil)

	assert.Nil(t, blob)
	assert.ErrorIs(t, err, ErrSemDados)
}

func TestExportarCSV_UmaLinha(t *testing.T) {
	r := NewRow()
	r.Set("Data", "10/03/2025")
	r.Set("Quantidade", 25.0)

	blob, err := ExportarCSV([]*Row{r})

	assert.NoError(t, err)
	texto := string(blob)
	// BOM para o Excel pt-BR abrir como UTF-8
	assert.True(t, strings.HasPrefix(texto, "\uFEFF"))
	assert.Equal(t, "Data;Quantidade\n10/03/2025;25", strings.TrimPrefix(texto, "\uFEFF"))
}

func TestExportarCSV_UniaoDeColunas(t *testing.T) {
	a := NewRow()
	a.Set("Data", "10/03/2025")
	a.Set("Maquina", "M1")
	b := NewRow()
	b.Set("Data", "11/03/2025")
	b.Set("Operador", "Ana")

	blob, err := ExportarCSV([]*Row{a, b})

	assert.NoError(t, err)
	linhas := strings.Split(strings.TrimPrefix(string(blob), "\uFEFF"), "\n")
	// Cabeçalho é a união na ordem da primeira aparição; ausências saem vazias
	assert.Equal(t, "Data;Maquina;Operador", linhas[0])
	assert.Equal(t, "10/03/2025;M1;", linhas[1])
	assert.Equal(t, "11/03/2025;;Ana", linhas[2])
}

func TestExportarCSV_Escape(t *testing.T) {
	r := NewRow()
	r.Set("Motivo", `Parou; faltou "material"`)
	r.Set("Obs", "linha um\nlinha dois")

	blob, err := ExportarCSV([]*Row{r})
	assert.NoError(t, err)

	// Round-trip por um leitor CSV ponto-e-vírgula
	leitor := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(blob), "\uFEFF")))
	leitor.Comma = ';'
	registros, err := leitor.ReadAll()

	assert.NoError(t, err)
	assert.Len(t, registros, 2)
	assert.Equal(t, `Parou; faltou "material"`, registros[1][0])
	// Quebras de linha dentro da célula colapsam em espaço
	assert.Equal(t, "linha um linha dois", registros[1][1])
}

func TestNomeArquivo(t *testing.T) {
	agora := time.UnixMilli(1741600000000)

	nome := NomeArquivo(constants.RelatorioProducao, "", agora)
	assert.Equal(t, "Produção_por_Período_1741600000000.csv", nome)

	// Sufixo de modo só aparece na rastreabilidade
	nome = NomeArquivo(constants.RelatorioRastreabilidade, constants.ModoCompacto, agora)
	assert.True(t, strings.HasSuffix(nome, "_compacto_1741600000000.csv"), nome)

	nome = NomeArquivo(constants.RelatorioProducao, constants.ModoCompacto, agora)
	assert.NotContains(t, nome, "compacto")

	// Tipo desconhecido cai no rótulo genérico
	nome = NomeArquivo("inexistente", "", agora)
	assert.Equal(t, "Relatorio_1741600000000.csv", nome)
}

func TestFormatarNumero(t *testing.T) {
	assert.Equal(t, "180,000", FormatarNumero(180, 3))
	assert.Equal(t, "0,500", FormatarNumero(0.5, 3))
	assert.Equal(t, "45", FormatarNumero(45.2, 0))
	assert.Equal(t, "1.250,75", FormatarNumero(1250.75, 2))
}

func TestRowRenderEOrdem(t *testing.T) {
	r := NewRow()
	r.Set("B", 1)
	r.Set("A", nil)
	r.Set("B", 2) // regrava sem mudar a posição

	assert.Equal(t, []string{"B", "A"}, r.Chaves())
	assert.Equal(t, "2", r.GetString("B"))
	assert.Equal(t, "", r.GetString("A"))

	j, err := r.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `{"B":2,"A":null}`, string(j))
}

package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danilocardosoweb/ControleUsinagem/internal/constants"
)

// ErrSemDados sinaliza a única falha visível ao usuário no motor: exportar
// um conjunto vazio de linhas.
var ErrSemDados = errors.New("sem dados para exportar")

// Marca de ordem de bytes para o Excel pt-BR abrir o CSV como UTF-8.
const bomUTF8 = "\ufeff"

const separadorCSV = ";"

var colapsarQuebras = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// ExportarCSV serializa as linhas em texto delimitado por ponto e vírgula.
// O cabeçalho é a união das chaves de todas as linhas, na ordem da primeira
// aparição; colunas ausentes numa linha saem vazias.
func ExportarCSV(linhas []*Row) ([]byte, error) {
	if len(linhas) == 0 {
		return nil, ErrSemDados
	}

	var cabecalho []string
	visto := make(map[string]bool)
	for _, r := range linhas {
		for _, chave := range r.Chaves() {
			if !visto[chave] {
				visto[chave] = true
				cabecalho = append(cabecalho, chave)
			}
		}
	}

	var b strings.Builder
	b.WriteString(bomUTF8)
	b.WriteString(strings.Join(cabecalho, separadorCSV))
	for _, r := range linhas {
		b.WriteString("\n")
		for i, coluna := range cabecalho {
			if i > 0 {
				b.WriteString(separadorCSV)
			}
			b.WriteString(escaparCSV(r.GetString(coluna)))
		}
	}
	return []byte(b.String()), nil
}

// escaparCSV colapsa quebras de linha em espaço e envolve em aspas, com
// aspas internas dobradas, quando o valor contém o separador ou aspas.
func escaparCSV(s string) string {
	s = colapsarQuebras.Replace(s)
	if strings.Contains(s, separadorCSV) || strings.Contains(s, `"`) {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// NomeArquivo deriva o nome do arquivo exportado: rótulo do relatório,
// sufixo de modo (só na rastreabilidade) e carimbo de tempo.
func NomeArquivo(tipo, modo string, agora time.Time) string {
	rotulo, ok := constants.NomesRelatorio[tipo]
	if !ok {
		rotulo = "Relatorio"
	}
	rotulo = strings.Join(strings.Fields(rotulo), "_")

	sufixo := ""
	if tipo == constants.RelatorioRastreabilidade && modo != "" {
		sufixo = "_" + modo
	}
	return fmt.Sprintf("%s%s_%d.csv", rotulo, sufixo, agora.UnixMilli())
}

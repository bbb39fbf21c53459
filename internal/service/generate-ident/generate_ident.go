// Package generate_ident gera o Formulário de Identificação do Material
// Cortado de um apontamento, como planilha xlsx para impressão.
package generate_ident

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/danilocardosoweb/ControleUsinagem/internal/report"
	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

type IdentStorage interface {
	GetApontamento(ctx context.Context, id string) (*storage.Apontamento, error)
}

type GenerateIdentService struct {
	storage IdentStorage
}

func NewGenerateIdentService(storage IdentStorage) *GenerateIdentService {
	return &GenerateIdentService{storage: storage}
}

// GenerateIdent monta o formulário de um apontamento e devolve o arquivo e
// o nome sugerido.
func (g *GenerateIdentService) GenerateIdent(ctx context.Context, id string) ([]byte, string, error) {
	const op = "service.generate_ident.GenerateIdent"

	a, err := g.storage.GetApontamento(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Identificação"
	f.SetSheetName("Sheet1", sheet)

	tituloStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 18},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	rotuloStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	valorStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 12},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	f.MergeCell(sheet, "A1", "B1")
	f.SetCellValue(sheet, "A1", "Formulário de Identificação do Material Cortado")
	f.SetCellStyle(sheet, "A1", "B1", tituloStyle)
	f.SetCellValue(sheet, "A2", "Lote: "+a.Lote)
	f.SetCellStyle(sheet, "A2", "A2", rotuloStyle)

	// Medida: o campo capturado tem prioridade; ausente ou zerado,
	// decodifica do código do produto.
	item := a.CodigoProduto()
	medida := report.ExtrairComprimentoAcabado(item)
	if a.ComprimentoAcabadoMM != nil && *a.ComprimentoAcabadoMM > 0 {
		medida = strconv.FormatFloat(*a.ComprimentoAcabadoMM, 'f', -1, 64) + " mm"
	}

	// No formulário impresso o campo sem valor fica em branco, não com traço.
	pedidoTecno := report.PedidoSeqExibicao(a)
	if pedidoTecno == "-" {
		pedidoTecno = ""
	}

	campos := []struct {
		Rotulo string
		Valor  string
	}{
		{"CLIENTE:", a.Cliente},
		{"ITEM:", item},
		{"ITEM CLI:", a.PerfilLongo},
		{"MEDIDA:", medida},
		{"PEDIDO TECNO:", pedidoTecno},
		{"QTDE:", strconv.FormatFloat(a.Quantidade, 'f', -1, 64)},
		{"PALET:", a.RackOuPallet},
		{"PEDIDO CLI:", a.PedidoCliente},
	}
	for i, campo := range campos {
		linhaNum := i + 4
		rotulo, _ := excelize.CoordinatesToCellName(1, linhaNum)
		valor, _ := excelize.CoordinatesToCellName(2, linhaNum)
		f.SetCellValue(sheet, rotulo, campo.Rotulo)
		f.SetCellStyle(sheet, rotulo, rotulo, rotuloStyle)
		f.SetCellValue(sheet, valor, campo.Valor)
		f.SetCellStyle(sheet, valor, valor, valorStyle)
	}

	f.SetColWidth(sheet, "A", "A", 22)
	f.SetColWidth(sheet, "B", "B", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	nome := a.Lote
	if nome == "" {
		nome = "apontamento"
	}
	return buf.Bytes(), fmt.Sprintf("identificacao_%s.xlsx", nome), nil
}

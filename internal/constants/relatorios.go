package constants

// Tipos de relatório aceitos pelo motor.
const (
	RelatorioProducao        = "producao"
	RelatorioParadas         = "paradas"
	RelatorioDesempenho      = "desempenho"
	RelatorioOEE             = "oee"
	RelatorioExpedicao       = "expedicao"
	RelatorioProdutividade   = "produtividade"
	RelatorioRastreabilidade = "rastreabilidade"
)

// Modos de exibição da rastreabilidade.
const (
	ModoDetalhado = "detalhado"
	ModoCompacto  = "compacto"
)

// Formatos de exportação aceitos. PDF não é implementado e degrada para o
// mesmo CSV com um aviso ao usuário.
const (
	FormatoExcel = "excel"
	FormatoPDF   = "pdf"
)

// OrdemRelatorios é a ordem de apresentação dos tipos na interface.
var OrdemRelatorios = []string{
	RelatorioProducao,
	RelatorioParadas,
	RelatorioDesempenho,
	RelatorioOEE,
	RelatorioExpedicao,
	RelatorioProdutividade,
	RelatorioRastreabilidade,
}

// NomesRelatorio são os rótulos de exibição, também usados no nome do
// arquivo exportado.
var NomesRelatorio = map[string]string{
	RelatorioProducao:        "Produção por Período",
	RelatorioParadas:         "Paradas de Máquina",
	RelatorioDesempenho:      "Desempenho por Operador/Máquina",
	RelatorioOEE:             "OEE Detalhado",
	RelatorioExpedicao:       "Estimativa de Expedição",
	RelatorioProdutividade:   "Produtividade (Itens)",
	RelatorioRastreabilidade: "Rastreabilidade (Amarrados/Lotes)",
}

// NomesTipoParada mapeia o vocabulário armazenado para o de exibição.
// Valores fora do vocabulário são exibidos como chegaram.
var NomesTipoParada = map[string]string{
	"setup":         "Setup",
	"nao_planejada": "Não Planejada",
	"manutencao":    "Manutenção",
	"planejada":     "Planejada",
}

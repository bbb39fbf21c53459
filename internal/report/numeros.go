package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Impressão de números no padrão pt-BR (vírgula decimal, ponto de milhar),
// igual ao que a planilha importada pelo PCP espera ler.
var impressoraPTBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatarNumero renderiza v com o número fixo de casas decimais em pt-BR.
func FormatarNumero(v float64, casas int) string {
	return impressoraPTBR.Sprint(number.Decimal(v,
		number.MinFractionDigits(casas),
		number.MaxFractionDigits(casas),
	))
}

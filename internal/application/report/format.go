package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	riyal   = currency.MustParseISO("SAR")
	printer = message.NewPrinter(language.English)
)

// FormatNumber monto con dos decimales y separador de miles, sin símbolo.
func FormatNumber(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.InexactFloat64())
}

// FormatSAR monto precedido del símbolo del riyal, p. ej. "SAR 1,234.50".
func FormatSAR(d decimal.Decimal) string {
	return printer.Sprint(currency.Symbol(riyal)) + " " + FormatNumber(d)
}

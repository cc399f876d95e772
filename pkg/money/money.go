package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formatea con separadores de miles estilo es-CO (1.234.567,89).
var printer = message.NewPrinter(language.Spanish)

// Format devuelve el monto con separador de miles y dos decimales, ej: "1.250.000,50".
// Se usa en PDFs y mensajes de notificación; la API siempre devuelve el decimal crudo.
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}

// FormatCOP devuelve el monto con símbolo de pesos, ej: "$ 1.250.000,50".
func FormatCOP(d decimal.Decimal) string {
	return "$ " + Format(d)
}

// Package currency renders rupee amounts for the Indian locale. Both the
// API responses and the payslip exporter depend on its strings being
// stable for equal inputs.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders d as an Indian-grouped rupee string, e.g. ₹1,00,000 or
// ₹3,300.50. Paise are shown only when present.
//
// Rounding to paise happens before the rupee/paise split so a fraction
// that rounds up to a whole rupee carries into the rupee part.
func Format(d decimal.Decimal) string {
	d = d.Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	rupees := d.IntPart()
	out := sign + "₹" + printer.Sprintf("%v", number.Decimal(rupees))

	paise := d.Sub(decimal.NewFromInt(rupees))
	if !paise.IsZero() {
		out += paise.StringFixed(2)[1:]
	}
	return out
}

// FormatBalance applies the product's sign rule for a month's final
// balance: exactly zero renders bare ("fully settled"), and every
// non-zero balance renders as "+" plus the magnitude, whichever side owes.
func FormatBalance(d decimal.Decimal) string {
	if d.IsZero() {
		return Format(decimal.Zero)
	}
	return "+" + Format(d.Abs())
}

package domain

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var displayLocale = language.MustParse("en-ZA")

// FormatCents renders an amount for display in the configured currency.
// Unrecognized currency codes fall back to "CODE 12.34" rather than
// failing; the code passes through as-is.
func FormatCents(cents int64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %.2f", code, float64(cents)/100)
	}
	p := message.NewPrinter(displayLocale)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(float64(cents)/100)))
}

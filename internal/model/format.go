package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount with the given currency symbol,
// two decimal places, and thousands separators, e.g. "$1,234.56".
// The sign is dropped; callers prepend +/- when direction matters.
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		symbol = "$"
	}
	fixed := amount.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	b.WriteString(symbol)
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders the integer part of amount with dot grouping, e.g. Rp1.500.000.
func FormatRupiah(amount decimal.Decimal) string {
	digits := strconv.FormatInt(amount.Abs().IntPart(), 10)

	var b strings.Builder
	if amount.IsNegative() && amount.IntPart() != 0 {
		b.WriteString("-")
	}
	b.WriteString("Rp")
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteRune('.')
		}
		b.WriteRune(r)
	}

	return b.String()
}

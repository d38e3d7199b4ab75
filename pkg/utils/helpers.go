package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FCurrency renders an amount with thousands separators and at most two
// decimals: 1500 -> "1,500", 99.5 -> "99.5". It stays exact for any
// magnitude; nothing goes through float64.
func FCurrency(n decimal.Decimal) string {
	rounded := n.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	whole := rounded.Truncate(0)
	out := sign + humanize.BigComma(whole.BigInt())

	// "0.5" -> ".5"; Sub keeps the fraction exact
	if frac := rounded.Sub(whole); !frac.IsZero() {
		out += strings.TrimPrefix(frac.String(), "0")
	}
	return out
}

func StrEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

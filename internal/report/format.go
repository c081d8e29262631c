// Package report renders catalog statistics for the terminal.
package report

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount in reais with two decimal places.
// Values that are not finite render as "R$ --".
func FormatCurrency(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "R$ --"
	}
	return "R$ " + decimal.NewFromFloat(v).StringFixed(2)
}

// FormatPrice renders an optional product price. A missing price shows as zero.
func FormatPrice(p *float64) string {
	if p == nil {
		return FormatCurrency(0)
	}
	return FormatCurrency(*p)
}

func FormatPercent(p float64) string {
	if math.IsInf(p, 0) || math.IsNaN(p) {
		return "--%"
	}
	return fmt.Sprintf("%.1f%%", p)
}

package services

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatMoney renders amount with thousands separators and at most two
// decimals, e.g. FormatMoney("฿", 227299) = "฿227,299".
func FormatMoney(symbol string, amount float64) string {
	amount = round2(amount)
	if amount < 0 {
		return "-" + symbol + humanize.Commaf(-amount)
	}
	return symbol + humanize.Commaf(amount)
}

// formatNumber prints whole numbers without decimals and anything else with
// up to two.
func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return humanize.Ftoa(round2(v))
}

// formatWeight renders a weight in kilograms.
func formatWeight(kg float64) string {
	return formatNumber(kg) + " kg"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

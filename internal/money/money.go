package money

import "github.com/shopspring/decimal"

// Round2 rounds a stored amount half away from zero to two decimals for display.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Format renders v with exactly two decimals, e.g. 12.5 -> "12.50".
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

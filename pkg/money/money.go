// Package money formats amounts and percents for display.
// Allocation math stays in float64; rounding only happens here.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Placeholder is shown instead of a non-finite value
const Placeholder = "—"

// Finite reports whether v is neither NaN nor infinite
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Nullable returns nil for non-finite values so they encode as JSON null
func Nullable(v float64) *float64 {
	if !Finite(v) {
		return nil
	}
	return &v
}

// Round rounds to cents. Non-finite values are returned unchanged.
func Round(v float64) float64 {
	if !Finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Format renders an amount with two fraction digits followed by the currency symbol
func Format(v float64, symbol string) string {
	if !Finite(v) {
		return Placeholder
	}
	s := decimal.NewFromFloat(v).StringFixed(2)
	if symbol == "" {
		return s
	}
	return s + " " + symbol
}

// FormatPercent renders a fraction as a percentage with the given fraction digits
func FormatPercent(p float64, places int32) string {
	if !Finite(p) {
		return Placeholder
	}
	return decimal.NewFromFloat(p).Mul(decimal.NewFromInt(100)).StringFixed(places) + "%"
}

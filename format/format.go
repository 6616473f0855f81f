// Package format renders amounts and rates for display.
package format

import (
	"math"

	"github.com/shopspring/decimal"
)

// Amount formats v with a precision that depends on its magnitude:
// 2 decimals from 100 up, 4 decimals from 1 up, 6 decimals below 1.
func Amount(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 100:
		return fixed(v, 2)
	case abs >= 1:
		return fixed(v, 4)
	default:
		return fixed(v, 6)
	}
}

// Money formats v with 2 decimals
func Money(v float64) string {
	return fixed(v, 2)
}

// Rate formats v in its shortest exact form, e.g. "0.92" or "1.05"
func Rate(v float64) string {
	if s, ok := special(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).String()
}

func fixed(v float64, places int32) string {
	if s, ok := special(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// special handles the values decimal cannot represent
func special(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

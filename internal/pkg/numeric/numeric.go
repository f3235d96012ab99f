// Package numeric is the money/number sanitizer. Every monetary or distance
// value crossing a package boundary (pricing arithmetic, persistence writes,
// response formatting) is coerced here so that a missing option price or a
// malformed catalog row resolves to 0 instead of propagating NaN into totals.
package numeric

import (
	"math"
	"strconv"

	"github.com/spf13/cast"
)

// SafeFloat returns 0 for nil, NaN, ±Inf and unparseable input, otherwise the
// numeric value. Strings are parsed; never panics.
func SafeFloat(value any) float64 {
	if value == nil {
		return 0
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// SafeFixed formats value with the given number of decimals after sanitizing.
// Malformed input yields "0.00" (for decimals=2), never an error.
func SafeFixed(value any, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(SafeFloat(value), 'f', decimals, 64)
}

// Round2 rounds to two decimals, the precision used for all distances and
// money amounts.
func Round2(v float64) float64 {
	return math.Round(SafeFloat(v)*100) / 100
}

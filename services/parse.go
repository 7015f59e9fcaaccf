package services

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ParseNumber converts form input to a float64. Empty, non-numeric, NaN and
// infinite values become 0.
func ParseNumber(s string) float64 {
	v, err := cast.ToFloat64E(strings.TrimSpace(s))
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseCount converts form input to a non-negative whole count, truncating
// any fractional part.
func ParseCount(s string) int {
	v := math.Trunc(ParseNumber(s))
	if v < 0 || v > math.MaxInt32 {
		return 0
	}
	return int(v)
}

package validate

import (
	"math"
	"strconv"
	"strings"
)

// ID parses a positive integer resource id from a path segment.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Qty normalizes a purchase quantity: absent or below 1 becomes 1. There is
// no upper bound.
func Qty(n *int) int {
	if n == nil || *n < 1 {
		return 1
	}
	return *n
}

// Money parses a non-negative amount. Empty input yields def.
func Money(s string, def float64) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Days parses the chart window length. Empty input yields def; zero and
// negative values pass through. Non-integers are rejected.
func Days(s string, def int) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Text trims s and falls back to def when nothing is left.
func Text(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

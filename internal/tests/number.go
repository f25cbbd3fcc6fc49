package tests

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalNumber accepts plain decimal notation with an optional exponent.
// Hex floats, underscores, "Inf" and "NaN" are rejected.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber parses s as a finite decimal number, ignoring surrounding whitespace.
// The second result is false when s is not a well-formed finite number.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !decimalNumber.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// ParsePrecision parses a precision-digits value. It must be a finite,
// non-negative number.
func ParsePrecision(s string) (float64, bool) {
	p, ok := ParseNumber(s)
	if !ok || p < 0 {
		return 0, false
	}
	return p, true
}

// withinPrecision reports whether |expected - actual| < 10^(-digits).
func withinPrecision(expected, actual, digits float64) bool {
	return math.Abs(expected-actual) < math.Pow(10, -digits)
}

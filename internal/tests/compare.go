package tests

import (
	"fmt"
	"strings"
	"unicode"
)

// Synthetic expectations used for structural failures.
const (
	MsgEmptyExpected       = "empty result expected"
	MsgMissingTerminator   = "test output must end with a line terminator"
	whitespaceOnlyTemplate = "whitespace only %q"
)

// CompareOptions configures how program output is compared with expectations.
type CompareOptions struct {
	// EmptyOutputSymbol is the expectation meaning "the program prints nothing".
	EmptyOutputSymbol string

	// Tolerance enables numeric comparison with PrecisionDigits.
	Tolerance bool

	// PrecisionDigits is the exponent of the allowed absolute difference:
	// values pass when |expected - actual| < 10^(-PrecisionDigits).
	PrecisionDigits float64
}

// DefaultCompareOptions returns exact comparison with the default empty-output symbol.
func DefaultCompareOptions() CompareOptions {
	return CompareOptions{
		EmptyOutputSymbol: DefaultEmptyOutputSymbol,
	}
}

// OptionsFromParams applies fixture parameters over base options.
//
// A bare empty-output-symbol flag keeps the base symbol. A precision-digits
// value that is not a non-negative number disables tolerance mode.
func OptionsFromParams(params ParamSet, base CompareOptions) CompareOptions {
	opts := base
	if opts.EmptyOutputSymbol == "" {
		opts.EmptyOutputSymbol = DefaultEmptyOutputSymbol
	}

	if v, ok := params.Lookup(ParamEmptyOutputSymbol); ok && !v.Flag {
		opts.EmptyOutputSymbol = v.Value
	}

	if v, ok := params.Lookup(ParamPrecisionDigits); ok {
		digits, valid := ParsePrecision(v.Value)
		if v.Flag || !valid {
			opts.Tolerance = false
			opts.PrecisionDigits = 0
		} else {
			opts.Tolerance = true
			opts.PrecisionDigits = digits
		}
	}

	return opts
}

// Compare decides whether actual satisfies test. It returns the failure record
// and false on mismatch, or a zero record and true on success.
//
// Rules, first match wins: empty-output symbol, trailing line terminator,
// numeric tolerance, exact match of expected plus one line terminator.
func Compare(test RawTest, actual string, opts CompareOptions) (FailureRecord, bool) {
	symbol := opts.EmptyOutputSymbol
	if symbol == "" {
		symbol = DefaultEmptyOutputSymbol
	}

	if test.Expected == symbol {
		if actual == "" {
			return FailureRecord{}, true
		}
		return FailureRecord{
			Input:    test.Input,
			Expected: MsgEmptyExpected,
			Actual:   displayEmptyModeActual(actual),
		}, false
	}

	if actual != "" && !strings.HasSuffix(actual, "\n") {
		return FailureRecord{
			Input:    test.Input,
			Expected: MsgMissingTerminator,
			Actual:   trimActual(actual),
		}, false
	}

	if opts.Tolerance {
		expected, okExpected := ParseNumber(test.Expected)
		got, okActual := ParseNumber(actual)
		if okExpected && okActual {
			if withinPrecision(expected, got, opts.PrecisionDigits) {
				return FailureRecord{}, true
			}
			return mismatch(test, actual), false
		}
	}

	if actual == test.Expected+"\n" {
		return FailureRecord{}, true
	}
	return mismatch(test, actual), false
}

func mismatch(test RawTest, actual string) FailureRecord {
	return FailureRecord{
		Input:    test.Input,
		Expected: test.Expected,
		Actual:   trimActual(actual),
	}
}

func trimActual(actual string) string {
	return strings.TrimRightFunc(actual, unicode.IsSpace)
}

// displayEmptyModeActual makes whitespace-only output visible in the report.
func displayEmptyModeActual(actual string) string {
	trimmed := trimActual(actual)
	if trimmed == "" {
		return fmt.Sprintf(whitespaceOnlyTemplate, actual)
	}
	return trimmed
}

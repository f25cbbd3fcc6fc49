package tests

import (
	"strings"
	"unicode"
)

// Selection markers on the first character of a test input.
const (
	MarkerFocus = '+'
	MarkerSkip  = '-'
)

// Select applies selection markers to the fixture tests.
//
// If any input starts with "+", only those tests run, with the marker and the
// whitespace after it removed. Otherwise every test not starting with "-" runs.
// Tests marked "-" never run.
func Select(all []RawTest) Selection {
	var focused, common []RawTest
	skipped := 0

	for _, t := range all {
		switch {
		case strings.HasPrefix(t.Input, string(MarkerFocus)):
			focused = append(focused, RawTest{
				Input:    strings.TrimLeftFunc(t.Input[1:], unicode.IsSpace),
				Expected: t.Expected,
			})
		case strings.HasPrefix(t.Input, string(MarkerSkip)):
			skipped++
		default:
			common = append(common, t)
		}
	}

	sel := Selection{
		Total:   len(all),
		Skipped: skipped,
	}
	if len(focused) > 0 {
		sel.Run = focused
		sel.Focused = true
	} else {
		sel.Run = common
	}
	return sel
}

// Partial reports whether fewer tests run than the fixture file holds.
func (s Selection) Partial() bool {
	return len(s.Run) < s.Total
}

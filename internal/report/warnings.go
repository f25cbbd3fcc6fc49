package report

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/cftest/internal/tests"
)

// WarningInput collects what the summary warnings are derived from.
type WarningInput struct {
	Params       tests.ParamSet
	Source       string
	DebugMarkers []string
	Ran          int
	Total        int
	Failed       int
}

// Warnings returns the non-fatal notices for a run, in display order:
// parameter problems, debug statements left in the source, partial runs.
func Warnings(in WarningInput) []string {
	warnings := ParamWarnings(in.Params)

	// Debug output only matters once everything passes.
	if in.Failed == 0 {
		if marker, ok := findDebugMarker(in.Source, in.DebugMarkers); ok {
			warnings = append(warnings, fmt.Sprintf("source contains debug statement %q", marker))
		}
	}

	if in.Ran < in.Total {
		warnings = append(warnings, fmt.Sprintf("%d of %d tests executed", in.Ran, in.Total))
	}

	return warnings
}

// ParamWarnings reports unknown parameters and ill-typed values.
func ParamWarnings(params tests.ParamSet) []string {
	var warnings []string

	for _, name := range params.SortedNames() {
		if !tests.IsKnownParam(name) {
			warnings = append(warnings, fmt.Sprintf("unknown parameter %q", name))
		}
	}

	if v, ok := params.Lookup(tests.ParamPrecisionDigits); ok {
		if _, valid := tests.ParsePrecision(v.Value); v.Flag || !valid {
			warnings = append(warnings, fmt.Sprintf("%s must be a non-negative number, got %q", tests.ParamPrecisionDigits, v.Value))
		}
	}

	if v, ok := params.Lookup(tests.ParamEmptyOutputSymbol); ok && v.Flag {
		warnings = append(warnings, fmt.Sprintf("%s needs a value, using %q", tests.ParamEmptyOutputSymbol, tests.DefaultEmptyOutputSymbol))
	}

	return warnings
}

func findDebugMarker(source string, markers []string) (string, bool) {
	for _, m := range markers {
		if m != "" && strings.Contains(source, m) {
			return m, true
		}
	}
	return "", false
}

// Package tests provides the fixture engine for cftest: splitting fixture files,
// parsing the parameter line, selecting the tests to run and comparing output.
package tests

import "errors"

// Recognized parameter names.
const (
	ParamPrecisionDigits   = "precision-digits"
	ParamEmptyOutputSymbol = "empty-output-symbol"
)

// DefaultEmptyOutputSymbol is the expectation that means "no output at all".
const DefaultEmptyOutputSymbol = "@"

// ErrFixtureNotFound is returned when the fixture text is absent or blank.
var ErrFixtureNotFound = errors.New("file with tests not found")

// RawTest is a single input/expected pair, in fixture order.
type RawTest struct {
	Input    string
	Expected string
}

// ParamValue is the value of one parameter. Flag is set when the parameter
// was given without a value.
type ParamValue struct {
	Value string
	Flag  bool
}

// ParamSet maps parameter names to values.
type ParamSet map[string]ParamValue

// Lookup returns the value of a parameter and whether it was given.
func (p ParamSet) Lookup(name string) (ParamValue, bool) {
	v, ok := p[name]
	return v, ok
}

// IsKnownParam reports whether name is one of the recognized parameters.
func IsKnownParam(name string) bool {
	return name == ParamPrecisionDigits || name == ParamEmptyOutputSymbol
}

// Selection is the outcome of applying selection markers to a fixture set.
type Selection struct {
	Run     []RawTest // Tests to execute, in fixture order
	Total   int       // Number of tests in the fixture file
	Skipped int       // Tests marked with "-"
	Focused bool      // True when "+" markers restricted the run set
}

// FailureRecord describes a test that ran and did not pass.
type FailureRecord struct {
	Input    string
	Expected string
	Actual   string
}

// Suite is a parsed fixture file.
type Suite struct {
	ParamLine string
	Params    ParamSet
	Tests     []RawTest
}

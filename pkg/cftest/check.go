package cftest

import (
	"context"

	"github.com/AndreyAkinshin/cftest/internal/engine"
	"github.com/AndreyAkinshin/cftest/internal/report"
	"github.com/AndreyAkinshin/cftest/internal/runner"
	"github.com/AndreyAkinshin/cftest/internal/tests"
)

// IO holds the primitives handed to the function under test: ReadLine
// yields the test input line by line, Write and Print append to the output.
type IO = engine.IO

// Failure describes a test that ran and did not pass.
type Failure = tests.FailureRecord

// Fault is returned by Check when the function under test returns an error.
type Fault = engine.Fault

// ErrNoTests is returned when selection markers leave nothing to run.
var ErrNoTests = runner.ErrNoTests

// ErrFixtureNotFound is returned for a blank fixture.
var ErrFixtureNotFound = tests.ErrFixtureNotFound

// Result is the outcome of checking a function against a fixture.
type Result struct {
	Failures []Failure
	Warnings []string
	Run      int // Tests executed
	Total    int // Tests in the fixture
}

// Passed reports whether every executed test passed.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Report renders the failures as plain aligned columns, one block per
// failure separated by blank lines.
func (r *Result) Report() string {
	return report.Text(r.Failures)
}

// Check runs fn against every selected test of the fixture text, in order,
// and compares its output the way the cftest CLI does.
//
// An error from fn aborts the run and is returned as a *Fault naming the
// input it failed on.
func Check(ctx context.Context, fixture string, fn func(io IO) error) (*Result, error) {
	suite, err := tests.Parse(fixture)
	if err != nil {
		return nil, err
	}
	return check(ctx, suite, fn)
}

// CheckFile is Check with the fixture read from path.
func CheckFile(ctx context.Context, path string, fn func(io IO) error) (*Result, error) {
	suite, err := tests.LoadSuite(path)
	if err != nil {
		return nil, err
	}
	return check(ctx, suite, fn)
}

func check(ctx context.Context, suite *tests.Suite, fn func(io IO) error) (*Result, error) {
	res, err := runner.New(engine.Func(fn), tests.DefaultCompareOptions()).Run(ctx, suite)
	if err != nil {
		return nil, err
	}

	return &Result{
		Failures: res.Failures,
		Warnings: report.Warnings(report.WarningInput{
			Params: res.Params,
			Ran:    res.Ran,
			Total:  res.Selection.Total,
			Failed: len(res.Failures),
		}),
		Run:   res.Ran,
		Total: res.Selection.Total,
	}, nil
}

// Package runner executes a fixture suite against a program, one test at a time.
package runner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/AndreyAkinshin/cftest/internal/engine"
	"github.com/AndreyAkinshin/cftest/internal/tests"
)

// ErrNoTests is returned when selection leaves nothing to run.
var ErrNoTests = errors.New("no tests to run")

// Runner feeds each selected test to a program and compares the output.
type Runner struct {
	program engine.Program
	base    tests.CompareOptions
}

// New creates a Runner. base supplies the comparison defaults that fixture
// parameters override.
func New(p engine.Program, base tests.CompareOptions) *Runner {
	return &Runner{program: p, base: base}
}

// Result is the outcome of a run.
type Result struct {
	Params    tests.ParamSet
	Selection tests.Selection
	Options   tests.CompareOptions
	Failures  []tests.FailureRecord
	Ran       int // Tests executed before the run ended
}

// Passed reports whether every selected test ran and passed.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0 && r.Ran == len(r.Selection.Run)
}

// Run executes the suite's run set sequentially, in fixture order.
//
// Mismatches are collected as failures and the run continues. An execution
// fault stops the run: the partial result is returned together with the
// *engine.Fault.
func (r *Runner) Run(ctx context.Context, suite *tests.Suite) (*Result, error) {
	sel := tests.Select(suite.Tests)
	opts := tests.OptionsFromParams(suite.Params, r.base)

	res := &Result{
		Params:    suite.Params,
		Selection: sel,
		Options:   opts,
	}

	slog.Debug("tests selected", "run", len(sel.Run), "total", sel.Total, "skipped", sel.Skipped, "focused", sel.Focused)

	if len(sel.Run) == 0 {
		return res, ErrNoTests
	}

	for i, test := range sel.Run {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		start := time.Now()
		actual, err := engine.Execute(ctx, r.program, test.Input)
		slog.Debug("test executed", "index", i+1, "duration", time.Since(start))
		if err != nil {
			return res, err
		}
		res.Ran++

		if failure, ok := tests.Compare(test, actual, opts); !ok {
			res.Failures = append(res.Failures, failure)
		}
	}

	return res, nil
}

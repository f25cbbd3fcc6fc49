// Package cftest provides public constants and an in-process API for checking
// Go functions against cftest fixture files.
package cftest

// Exit codes returned by the cftest CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the run completed. Failing tests are reported on
	// standard output and still exit with ExitSuccess.
	ExitSuccess = 0

	// ExitFailure indicates the run was terminated with an error: bad
	// arguments, a missing or empty file, no tests to run, or a crash of
	// the program under test.
	ExitFailure = 1
)

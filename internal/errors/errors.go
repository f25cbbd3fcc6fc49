// Package errors provides structured error types and exit codes for cftest.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes. Test failures are reported, not signalled: a completed run
// exits with ExitSuccess whatever its outcome.
const (
	ExitSuccess = 0 // Success, including runs with failing tests
	ExitFailure = 1 // Terminated with an error
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime  ErrorKind = iota // Internal or environment failure
	KindConfig                    // Bad invocation, configuration or fixture
	KindNotFound                  // Source or fixture file missing
	KindFault                     // The program under test crashed
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindNotFound:
		return "not found"
	case KindFault:
		return "fault"
	default:
		return "runtime"
	}
}

// HarnessError is the base error type for cftest.
type HarnessError struct {
	Kind    ErrorKind
	Message string
	Path    string // File path if applicable
	Cause   error  // Underlying error
}

func (e *HarnessError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Path)
	}
	if e.Cause == nil {
		return msg
	}
	if e.Kind == KindFault {
		return msg + "\n" + e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", msg, e.Cause)
}

func (e *HarnessError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error.
func (e *HarnessError) ExitCode() int {
	return ExitFailure
}

// New creates a new runtime error.
func New(message string) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *HarnessError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *HarnessError {
	return &HarnessError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *HarnessError {
	return Config(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// WrapConfig wraps a configuration or fixture error.
func WrapConfig(err error, message string) *HarnessError {
	return &HarnessError{
		Kind:    KindConfig,
		Message: message,
		Cause:   err,
	}
}

// NotFound creates an error for a missing file.
func NotFound(path string) *HarnessError {
	return &HarnessError{
		Kind:    KindNotFound,
		Message: "no such file or directory",
		Path:    path,
	}
}

// Fault creates an error for a crash of the program under test on input.
func Fault(input string, cause error) *HarnessError {
	return &HarnessError{
		Kind:    KindFault,
		Message: "execution failed on input:\n" + input,
		Cause:   cause,
	}
}

// Is reports whether err is a HarnessError of the given kind.
func Is(err error, kind ErrorKind) bool {
	var he *HarnessError
	return errors.As(err, &he) && he.Kind == kind
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var he *HarnessError
	if errors.As(err, &he) {
		return he.ExitCode()
	}
	return ExitFailure
}

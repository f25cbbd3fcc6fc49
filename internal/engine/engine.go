// Package engine runs the program under test against one test input at a time.
//
// A Program receives three primitives: ReadLine yields the test input line by
// line, Write appends raw text to the output and Print appends text followed by
// a line terminator. The captured output is everything appended, in call order.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// IO holds the primitives handed to a program for a single test.
type IO struct {
	// ReadLine returns the next unread input line. ok is false once the
	// input is exhausted.
	ReadLine func() (line string, ok bool)

	// Write appends s to the output.
	Write func(s string)

	// Print appends s and a line terminator to the output.
	Print func(s string)
}

// Program is an executable form of the source under test.
//
// Run executes the program once. A returned error is an execution fault and
// aborts the whole test run.
type Program interface {
	Run(ctx context.Context, io IO) error
}

// Func adapts a Go function to the Program interface.
type Func func(io IO) error

// Run calls f.
func (f Func) Run(_ context.Context, io IO) error {
	return f(io)
}

// Capture feeds one test's input and records the produced output.
type Capture struct {
	lines []string
	next  int
	out   strings.Builder
}

// NewCapture prepares a capture for the given input text.
func NewCapture(input string) *Capture {
	return &Capture{lines: strings.Split(input, "\n")}
}

// IO returns the primitives bound to this capture.
func (c *Capture) IO() IO {
	return IO{
		ReadLine: c.readLine,
		Write:    c.write,
		Print:    c.print,
	}
}

// Output returns everything written so far.
func (c *Capture) Output() string {
	return c.out.String()
}

func (c *Capture) readLine() (string, bool) {
	if c.next >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.next]
	c.next++
	return line, true
}

func (c *Capture) write(s string) {
	c.out.WriteString(s)
}

func (c *Capture) print(s string) {
	c.out.WriteString(s)
	c.out.WriteByte('\n')
}

// Execute runs p once against input and returns the captured output.
// Any error from the program is returned as a *Fault.
func Execute(ctx context.Context, p Program, input string) (string, error) {
	c := NewCapture(input)
	if err := p.Run(ctx, c.IO()); err != nil {
		var fault *Fault
		if errors.As(err, &fault) {
			if fault.Input == "" {
				fault.Input = input
			}
			return c.Output(), fault
		}
		return c.Output(), &Fault{Input: input, Err: err}
	}
	return c.Output(), nil
}

// Fault is an unrecoverable failure of the program under test.
type Fault struct {
	Input  string // Input of the test that faulted
	Err    error  // Underlying error
	Stderr string // Tail of the program's diagnostic output, if any
}

func (f *Fault) Error() string {
	msg := fmt.Sprintf("execution failed: %v", f.Err)
	if s := strings.TrimSpace(f.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (f *Fault) Unwrap() error {
	return f.Err
}

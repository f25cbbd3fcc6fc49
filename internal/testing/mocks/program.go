// Package mocks provides shared test doubles for cftest packages.
package mocks

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/AndreyAkinshin/cftest/internal/engine"
)

// Program implements engine.Program for testing.
// Use NewProgram() to create instances with a fluent builder API.
//
// Responses are keyed by the full input text of a test. Inputs without a
// response are handled by RunFunc, or produce no output when it is nil.
type Program struct {
	outputs map[string]string
	faults  map[string]error

	// RunFunc is called for inputs without a scripted response.
	RunFunc func(ctx context.Context, io engine.IO) error

	// Execution tracking (thread-safe)
	runCount int32
	mu       sync.Mutex
	inputs   []string
}

// NewProgram creates a new mock program.
func NewProgram() *Program {
	return &Program{
		outputs: make(map[string]string),
		faults:  make(map[string]error),
	}
}

// WithOutput makes the program write output when given input.
func (m *Program) WithOutput(input, output string) *Program {
	m.outputs[input] = output
	return m
}

// WithFault makes the program fail with err when given input.
func (m *Program) WithFault(input string, err error) *Program {
	m.faults[input] = err
	return m
}

// WithRunFunc sets the fallback for unscripted inputs.
func (m *Program) WithRunFunc(fn func(ctx context.Context, io engine.IO) error) *Program {
	m.RunFunc = fn
	return m
}

// Run implements engine.Program. The whole input is drained before the
// scripted response is looked up.
func (m *Program) Run(ctx context.Context, io engine.IO) error {
	atomic.AddInt32(&m.runCount, 1)

	var lines []string
	for {
		line, ok := io.ReadLine()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	input := strings.Join(lines, "\n")
	m.record(input)

	if err, ok := m.faults[input]; ok {
		return err
	}
	if out, ok := m.outputs[input]; ok {
		io.Write(out)
		return nil
	}
	if m.RunFunc != nil {
		return m.RunFunc(ctx, replay(lines, io))
	}
	return nil
}

func (m *Program) record(input string) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()
}

// replay returns primitives that yield lines again and write through io.
func replay(lines []string, io engine.IO) engine.IO {
	next := 0
	return engine.IO{
		ReadLine: func() (string, bool) {
			if next >= len(lines) {
				return "", false
			}
			next++
			return lines[next-1], true
		},
		Write: io.Write,
		Print: io.Print,
	}
}

// Test inspection methods

// RunCount returns the number of times Run was called.
func (m *Program) RunCount() int32 {
	return atomic.LoadInt32(&m.runCount)
}

// Inputs returns the inputs the program received, in call order.
func (m *Program) Inputs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.inputs))
	copy(result, m.inputs)
	return result
}

// Reset clears execution tracking state.
func (m *Program) Reset() {
	atomic.StoreInt32(&m.runCount, 0)
	m.mu.Lock()
	m.inputs = nil
	m.mu.Unlock()
}

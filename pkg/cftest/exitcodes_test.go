package cftest_test

import (
	"testing"

	"github.com/AndreyAkinshin/cftest/internal/errors"
	"github.com/AndreyAkinshin/cftest/pkg/cftest"
)

func TestExitCodeValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"ExitSuccess", cftest.ExitSuccess, 0},
		{"ExitFailure", cftest.ExitFailure, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.constant != tt.expected {
				t.Errorf("cftest.%s = %d, want %d", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

// TestExitCodesMatchInternal keeps the public constants in sync with the
// codes the CLI actually returns.
func TestExitCodesMatchInternal(t *testing.T) {
	t.Parallel()

	if cftest.ExitSuccess != errors.ExitSuccess {
		t.Errorf("ExitSuccess = %d, internal = %d", cftest.ExitSuccess, errors.ExitSuccess)
	}
	if cftest.ExitFailure != errors.ExitFailure {
		t.Errorf("ExitFailure = %d, internal = %d", cftest.ExitFailure, errors.ExitFailure)
	}
}

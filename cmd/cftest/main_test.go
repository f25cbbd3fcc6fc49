package main

import (
	"os/exec"
	"strings"
	"testing"
)

// TestMain_BuildVerification verifies the binary builds successfully.
func TestMain_BuildVerification(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("go", "build", "-o", "/dev/null", ".")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to build main package: %v", err)
	}
}

func TestMain_HelpFlag(t *testing.T) {
	t.Parallel()

	out, err := exec.Command("go", "run", ".", "--help").CombinedOutput()
	if err != nil {
		t.Fatalf("--help failed: %v\noutput: %s", err, out)
	}
	if !strings.Contains(string(out), "Fixture Format") {
		t.Errorf("--help output missing fixture format section:\n%s", out)
	}
}

// TestMain_NoArguments verifies a bare invocation fails with a hint.
func TestMain_NoArguments(t *testing.T) {
	t.Parallel()

	out, err := exec.Command("go", "run", ".").CombinedOutput()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error, got %v\noutput: %s", err, out)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "provide source file as first argument") {
		t.Errorf("output = %q", out)
	}
}

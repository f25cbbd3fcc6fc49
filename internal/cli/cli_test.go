package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AndreyAkinshin/cftest/internal/config"
	"github.com/AndreyAkinshin/cftest/internal/engine"
	harnesserrors "github.com/AndreyAkinshin/cftest/internal/errors"
	"github.com/AndreyAkinshin/cftest/internal/output"
	"github.com/AndreyAkinshin/cftest/internal/runner"
	"github.com/AndreyAkinshin/cftest/internal/tests"
)

func TestValidateOptions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"defaults", Options{Color: "auto"}, ""},
		{"verbose", Options{Color: "never", Verbose: true}, ""},
		{"quiet", Options{Color: "always", Quiet: true}, ""},
		{"quiet and verbose", Options{Color: "auto", Quiet: true, Verbose: true}, "--quiet and --verbose are mutually exclusive"},
		{"bad color", Options{Color: "rainbow"}, `invalid --color value "rainbow" (valid values: auto, always, never)`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := validateOptions(&tc.opts)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("validateOptions() error = %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("validateOptions() error = %v, want %q", err, tc.wantErr)
			}
			if !harnesserrors.Is(err, harnesserrors.KindConfig) {
				t.Errorf("validateOptions() error kind is not config")
			}
		})
	}
}

func TestColorEnabled(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mode string
		tty  bool
		want bool
	}{
		{"auto", true, true},
		{"auto", false, false},
		{"always", false, true},
		{"never", true, false},
		{"", true, true},
	}

	for _, tc := range cases {
		if got := colorEnabled(tc.mode, tc.tty); got != tc.want {
			t.Errorf("colorEnabled(%q, %v) = %v, want %v", tc.mode, tc.tty, got, tc.want)
		}
	}
}

func TestSelectRuntime(t *testing.T) {
	t.Parallel()

	runtimes := []engine.Runtime{
		{Name: "sh", Extensions: []string{"sh"}, Command: []string{"sh"}},
		{Name: "node", Extensions: []string{"js"}, Command: []string{"node"}},
	}

	t.Run("detect by extension", func(t *testing.T) {
		t.Parallel()
		rt, err := selectRuntime("", "/work/1A.js", runtimes)
		if err != nil {
			t.Fatalf("selectRuntime() error = %v", err)
		}
		if rt.Name != "node" {
			t.Errorf("selectRuntime() = %q, want node", rt.Name)
		}
	})

	t.Run("flag overrides extension", func(t *testing.T) {
		t.Parallel()
		rt, err := selectRuntime("sh", "/work/1A.js", runtimes)
		if err != nil {
			t.Fatalf("selectRuntime() error = %v", err)
		}
		if rt.Name != "sh" {
			t.Errorf("selectRuntime() = %q, want sh", rt.Name)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		_, err := selectRuntime("ruby", "/work/1A.js", runtimes)
		want := `unknown runtime "ruby" (available: node, sh)`
		if err == nil || err.Error() != want {
			t.Errorf("selectRuntime() error = %v, want %q", err, want)
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		t.Parallel()
		_, err := selectRuntime("", "/work/1A.rb", runtimes)
		want := `no runtime for ".rb" files; use --runtime (available: node, sh)`
		if err == nil || err.Error() != want {
			t.Errorf("selectRuntime() error = %v, want %q", err, want)
		}
	})
}

func TestCompareOptions(t *testing.T) {
	t.Parallel()

	digits := 4
	cases := []struct {
		name string
		cfg  *config.Config
		want tests.CompareOptions
	}{
		{
			name: "no comparison section",
			cfg:  &config.Config{},
			want: tests.CompareOptions{EmptyOutputSymbol: "@"},
		},
		{
			name: "symbol only",
			cfg:  &config.Config{Comparison: &config.ComparisonConfig{EmptyOutputSymbol: "#"}},
			want: tests.CompareOptions{EmptyOutputSymbol: "#"},
		},
		{
			name: "precision",
			cfg:  &config.Config{Comparison: &config.ComparisonConfig{EmptyOutputSymbol: "@", PrecisionDigits: &digits}},
			want: tests.CompareOptions{EmptyOutputSymbol: "@", Tolerance: true, PrecisionDigits: 4},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tc.want, compareOptions(tc.cfg)); diff != "" {
				t.Errorf("compareOptions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunError(t *testing.T) {
	t.Parallel()

	t.Run("no tests", func(t *testing.T) {
		t.Parallel()
		err := runError(context.Background(), fmt.Errorf("run: %w", runner.ErrNoTests))
		if err.Error() != "no tests to run" || !harnesserrors.Is(err, harnesserrors.KindConfig) {
			t.Errorf("runError() = %v", err)
		}
	})

	t.Run("fault", func(t *testing.T) {
		t.Parallel()
		fault := &engine.Fault{Input: "1 2", Err: errors.New("exit status 1")}
		err := runError(context.Background(), fault)
		if !harnesserrors.Is(err, harnesserrors.KindFault) {
			t.Fatalf("runError() kind is not fault: %v", err)
		}
		var got *engine.Fault
		if !errors.As(err, &got) || got != fault {
			t.Errorf("runError() does not wrap the fault")
		}
	})

	t.Run("interrupted", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := runError(ctx, errors.New("execution interrupted"))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("runError() = %v, want context.Canceled", err)
		}
	})

	t.Run("other", func(t *testing.T) {
		t.Parallel()
		err := runError(context.Background(), errors.New("pipe closed"))
		if err.Error() != "run failed: pipe closed" {
			t.Errorf("runError() = %q", err.Error())
		}
	})
}

func TestReportError(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer
		w := output.NewWithWriters(&bytes.Buffer{}, &stderr, false)
		reportError(w, harnesserrors.Config("source file is empty"))
		if got := stderr.String(); got != "cftest: source file is empty\n" {
			t.Errorf("reportError() = %q", got)
		}
	})

	t.Run("fault", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer
		w := output.NewWithWriters(&bytes.Buffer{}, &stderr, false)
		fault := &engine.Fault{Input: "3\n1 2 3", Err: errors.New("exit status 1"), Stderr: "TypeError\n"}
		reportError(w, harnesserrors.Fault(fault.Input, fault))

		want := "cftest: execution failed on input:\n3\n1 2 3\nexecution failed: exit status 1\nTypeError\n"
		if diff := cmp.Diff(want, stderr.String()); diff != "" {
			t.Errorf("reportError() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFixtureCandidates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		source   string
		explicit string
		want     []string
	}{
		{
			name:   "implicit",
			source: "/work/1A.js",
			want:   []string{"/work/1A", "/work/1A.test", "tests", "test"},
		},
		{
			name:     "explicit first",
			source:   "/work/1A.js",
			explicit: "cases.txt",
			want:     []string{"cases.txt", "/work/1A", "/work/1A.test", "tests", "test"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := fixtureCandidates(tc.source, tc.explicit, config.DefaultFixtureNames)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("fixtureCandidates() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLocateFixture(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "1A.js")
	mustWrite(t, source, "print(1)\n")

	if _, err := locateFixture(source, "", nil); err == nil || err.Error() != "file with tests not found" {
		t.Fatalf("locateFixture() error = %v", err)
	}

	// A directory named like the fixture is skipped.
	if err := os.Mkdir(filepath.Join(dir, "1A"), 0755); err != nil {
		t.Fatal(err)
	}
	dotTest := filepath.Join(dir, "1A.test")
	mustWrite(t, dotTest, "1\n\n1\n")

	got, err := locateFixture(source, "", nil)
	if err != nil {
		t.Fatalf("locateFixture() error = %v", err)
	}
	if got != dotTest {
		t.Errorf("locateFixture() = %q, want %q", got, dotTest)
	}

	explicit := filepath.Join(dir, "cases.txt")
	mustWrite(t, explicit, "")
	if got, _ := locateFixture(source, explicit, nil); got != explicit {
		t.Errorf("locateFixture() with explicit = %q, want %q", got, explicit)
	}
}

func TestResolveSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	js := filepath.Join(dir, "1A.js")
	mustWrite(t, js, "print(1)\n")

	got, err := resolveSource(filepath.Join(dir, "1A"), "js")
	if err != nil {
		t.Fatalf("resolveSource() error = %v", err)
	}
	if got != js {
		t.Errorf("resolveSource() = %q, want %q", got, js)
	}

	if got, _ := resolveSource(js, "py"); got != js {
		t.Errorf("resolveSource() with extension = %q, want %q", got, js)
	}

	_, err = resolveSource(filepath.Join(dir, "2B"), ".py")
	if !harnesserrors.Is(err, harnesserrors.KindNotFound) {
		t.Fatalf("resolveSource() error = %v, want not found", err)
	}
	if !strings.HasSuffix(err.Error(), "2B.py'") {
		t.Errorf("resolveSource() error = %q, want the missing path", err.Error())
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--version"}, &stdout, &stderr, false)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}
	if got := stdout.String(); got != "cftest "+Version+"\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--help"}, &stdout, &stderr, false)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}
	for _, want := range []string{"Usage:", "cftest <source-file> [fixture-file]", "precision-digits", "--runtime"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--nope"}, &stdout, &stderr, false)
	if code != harnesserrors.ExitFailure {
		t.Errorf("exit code = %d, want %d", code, harnesserrors.ExitFailure)
	}
	if !strings.HasPrefix(stderr.String(), "cftest: invalid arguments: unknown flag: --nope") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

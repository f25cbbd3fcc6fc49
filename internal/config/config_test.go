package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, ".cftest.yaml", `
default_extension: py
color: never
comparison:
  precision_digits: 4
  empty_output_symbol: "#"
runtimes:
  ruby:
    extensions: [rb]
    command: [ruby]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultExtension != "py" {
		t.Errorf("DefaultExtension = %q, want %q", cfg.DefaultExtension, "py")
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want %q", cfg.Color, "never")
	}
	if cfg.Comparison == nil || cfg.Comparison.PrecisionDigits == nil || *cfg.Comparison.PrecisionDigits != 4 {
		t.Errorf("Comparison.PrecisionDigits = %+v, want 4", cfg.Comparison)
	}
	if cfg.Comparison.EmptyOutputSymbol != "#" {
		t.Errorf("Comparison.EmptyOutputSymbol = %q, want %q", cfg.Comparison.EmptyOutputSymbol, "#")
	}
	if diff := cmp.Diff([]string{"ruby"}, cfg.Runtimes["ruby"].Command); diff != "" {
		t.Errorf("Runtimes[ruby].Command mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_TOML(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, ".cftest.toml", `
default_extension = "sh"
fixture_names = ["cases"]

[comparison]
precision_digits = 2

[runtimes.sh]
command = ["bash"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultExtension != "sh" {
		t.Errorf("DefaultExtension = %q, want %q", cfg.DefaultExtension, "sh")
	}
	if diff := cmp.Diff([]string{"cases"}, cfg.FixtureNames); diff != "" {
		t.Errorf("FixtureNames mismatch (-want +got):\n%s", diff)
	}
	if cfg.Comparison == nil || cfg.Comparison.PrecisionDigits == nil || *cfg.Comparison.PrecisionDigits != 2 {
		t.Errorf("Comparison.PrecisionDigits = %+v, want 2", cfg.Comparison)
	}
	if diff := cmp.Diff([]string{"bash"}, cfg.Runtimes["sh"].Command); diff != "" {
		t.Errorf("Runtimes[sh].Command mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, ".cftest.yml", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultExtension != "" {
		t.Errorf("DefaultExtension = %q, want empty before defaults", cfg.DefaultExtension)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()
	_, err := Load("/nonexistent/path/.cftest.yaml")
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("error = %q, want read failure", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, ".cftest.yaml", "color: [never\n")

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("Load() error = %v, want parse failure", err)
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, ".cftest.yaml", "color: sometimes\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected schema error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error = %q, want it to name %s", err, path)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, ".cftest.yaml", "color: always\n")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults() error = %v", err)
	}
	if cfg.DefaultExtension != DefaultExtension {
		t.Errorf("DefaultExtension = %q, want %q", cfg.DefaultExtension, DefaultExtension)
	}
	if cfg.Color != "always" {
		t.Errorf("Color = %q, want %q", cfg.Color, "always")
	}
	if diff := cmp.Diff(DefaultFixtureNames, cfg.FixtureNames); diff != "" {
		t.Errorf("FixtureNames mismatch (-want +got):\n%s", diff)
	}
	if cfg.Comparison.EmptyOutputSymbol != DefaultEmptyOutputSymbol {
		t.Errorf("EmptyOutputSymbol = %q, want %q", cfg.Comparison.EmptyOutputSymbol, DefaultEmptyOutputSymbol)
	}
	if cfg.Comparison.PrecisionDigits != nil {
		t.Errorf("PrecisionDigits = %d, want nil", *cfg.Comparison.PrecisionDigits)
	}
}

func TestLoadAndValidate_Warnings(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, ".cftest.yaml", `
default_extension: rb
verbose: true
runtimes:
  node:
    timeout: 5
`)

	cfg, warnings, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadAndValidate() returned nil config")
	}

	want := []string{
		`unknown field "verbose" at root level (ignored)`,
		`unknown field "timeout" in runtime "node" (ignored)`,
		`no runtime handles the default extension "rb"`,
	}
	if diff := cmp.Diff(want, warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAndValidate_NewRuntimeNeedsExtensions(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, ".cftest.yaml", `
runtimes:
  ruby:
    command: [ruby]
`)

	_, _, err := LoadAndValidate(path)
	if err == nil {
		t.Fatal("LoadAndValidate() expected error")
	}
	if !strings.Contains(err.Error(), "runtimes.ruby.extensions") {
		t.Errorf("error = %q, want runtimes.ruby.extensions", err)
	}
}

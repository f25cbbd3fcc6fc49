// Package config provides loading and validation for .cftest configuration files.
package config

// Config represents the complete .cftest configuration.
type Config struct {
	DefaultExtension string                   `json:"default_extension,omitempty"`
	Color            string                   `json:"color,omitempty"`
	FixtureNames     []string                 `json:"fixture_names,omitempty"`
	Comparison       *ComparisonConfig        `json:"comparison,omitempty"`
	Runtimes         map[string]RuntimeConfig `json:"runtimes,omitempty"`
}

// ComparisonConfig holds defaults for the fixture parameters.
type ComparisonConfig struct {
	PrecisionDigits   *int   `json:"precision_digits,omitempty"`
	EmptyOutputSymbol string `json:"empty_output_symbol,omitempty"`
}

// RuntimeConfig defines how source files of one language are executed.
type RuntimeConfig struct {
	Extensions   []string `json:"extensions,omitempty" yaml:"extensions"`
	Command      []string `json:"command,omitempty" yaml:"command"`
	Prelude      string   `json:"prelude,omitempty" yaml:"prelude"`
	Epilogue     string   `json:"epilogue,omitempty" yaml:"epilogue"`
	DebugMarkers []string `json:"debug_markers,omitempty" yaml:"debug_markers"`
}

// ColorMode controls colorized output.
type ColorMode string

const (
	// ColorAuto enables color when standard output is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces color on.
	ColorAlways ColorMode = "always"
	// ColorNever disables color.
	ColorNever ColorMode = "never"
)

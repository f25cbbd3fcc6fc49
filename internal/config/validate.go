package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	// Runtime name: lowercase letters, digits, and hyphens.
	runtimeNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

	// File extension without the leading dot.
	extensionPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
// It expects defaults to be applied.
func Validate(cfg *Config) (warnings []string, err error) {
	if err := validateExtension("default_extension", cfg.DefaultExtension); err != nil {
		return nil, err
	}

	if err := ValidateColor(cfg.Color); err != nil {
		return nil, err
	}

	for i, name := range cfg.FixtureNames {
		if strings.TrimSpace(name) == "" {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("fixture_names[%d]", i),
				Message: "must not be empty",
			}
		}
	}

	if err := validateComparison(cfg.Comparison); err != nil {
		return nil, err
	}

	if err := validateRuntimes(cfg); err != nil {
		return nil, err
	}

	if !hasRuntimeFor(cfg, cfg.DefaultExtension) {
		warnings = append(warnings, fmt.Sprintf("no runtime handles the default extension %q", cfg.DefaultExtension))
	}

	return warnings, nil
}

// ValidateColor checks a color mode value.
func ValidateColor(mode string) error {
	switch ColorMode(mode) {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return &ValidationError{
		Field:   "color",
		Message: `must be "auto", "always" or "never"`,
	}
}

func validateExtension(field, ext string) error {
	if ext == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	if !extensionPattern.MatchString(ext) {
		return &ValidationError{
			Field:   field,
			Message: "must match pattern ^[A-Za-z0-9]+$ (no leading dot)",
		}
	}
	return nil
}

func validateComparison(c *ComparisonConfig) error {
	if c == nil {
		return nil
	}
	if c.PrecisionDigits != nil && *c.PrecisionDigits < 0 {
		return &ValidationError{
			Field:   "comparison.precision_digits",
			Message: "must be a non-negative integer",
		}
	}
	if c.EmptyOutputSymbol == "" || strings.ContainsAny(c.EmptyOutputSymbol, " \t\r\n") {
		return &ValidationError{
			Field:   "comparison.empty_output_symbol",
			Message: "must be a non-empty string without whitespace",
		}
	}
	return nil
}

func validateRuntimes(cfg *Config) error {
	names := make([]string, 0, len(cfg.Runtimes))
	for name := range cfg.Runtimes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !runtimeNamePattern.MatchString(name) {
			return &ValidationError{
				Field:   fmt.Sprintf("runtimes.%s", name),
				Message: "runtime name must match pattern ^[a-z][a-z0-9-]*$ (lowercase letters, digits, hyphens)",
			}
		}
		rt := cfg.Runtimes[name]
		if len(rt.Command) == 0 || rt.Command[0] == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("runtimes.%s.command", name),
				Message: "is required",
			}
		}
		if len(rt.Extensions) == 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("runtimes.%s.extensions", name),
				Message: "is required",
			}
		}
		for i, ext := range rt.Extensions {
			if err := validateExtension(fmt.Sprintf("runtimes.%s.extensions[%d]", name, i), ext); err != nil {
				return err
			}
		}
	}
	return nil
}

func hasRuntimeFor(cfg *Config, ext string) bool {
	for _, rt := range cfg.EngineRuntimes() {
		if rt.HasExtension(ext) {
			return true
		}
	}
	return false
}

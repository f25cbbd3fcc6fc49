package config

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/cftest/internal/engine"
)

// Default configuration values.
const (
	DefaultExtension         = "js"
	DefaultColor             = string(ColorAuto)
	DefaultEmptyOutputSymbol = "@"
)

// DefaultFixtureNames are the literal fixture file names tried after the
// names derived from the source path.
var DefaultFixtureNames = []string{"tests", "test"}

//go:embed runtimes.yaml
var builtinRuntimesYAML []byte

// BuiltinRuntimes returns the runtimes shipped with the binary.
func BuiltinRuntimes() (map[string]RuntimeConfig, error) {
	var runtimes map[string]RuntimeConfig
	if err := yaml.Unmarshal(builtinRuntimesYAML, &runtimes); err != nil {
		return nil, fmt.Errorf("failed to parse built-in runtimes: %w", err)
	}
	return runtimes, nil
}

// Default returns the configuration used when no file is found.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) error {
	if cfg.DefaultExtension == "" {
		cfg.DefaultExtension = DefaultExtension
	}
	if cfg.Color == "" {
		cfg.Color = DefaultColor
	}
	if len(cfg.FixtureNames) == 0 {
		cfg.FixtureNames = append([]string(nil), DefaultFixtureNames...)
	}
	applyComparisonDefaults(cfg)
	return applyRuntimeDefaults(cfg)
}

func applyComparisonDefaults(cfg *Config) {
	if cfg.Comparison == nil {
		cfg.Comparison = &ComparisonConfig{}
	}
	if cfg.Comparison.EmptyOutputSymbol == "" {
		cfg.Comparison.EmptyOutputSymbol = DefaultEmptyOutputSymbol
	}
}

func applyRuntimeDefaults(cfg *Config) error {
	builtin, err := BuiltinRuntimes()
	if err != nil {
		return err
	}
	for name, user := range cfg.Runtimes {
		builtin[name] = mergeRuntime(builtin[name], user)
	}
	cfg.Runtimes = builtin
	return nil
}

// mergeRuntime overlays the non-empty fields of override on base.
func mergeRuntime(base, override RuntimeConfig) RuntimeConfig {
	if len(override.Extensions) > 0 {
		base.Extensions = override.Extensions
	}
	if len(override.Command) > 0 {
		base.Command = override.Command
	}
	if override.Prelude != "" {
		base.Prelude = override.Prelude
	}
	if override.Epilogue != "" {
		base.Epilogue = override.Epilogue
	}
	if override.DebugMarkers != nil {
		base.DebugMarkers = override.DebugMarkers
	}
	return base
}

// EngineRuntimes converts the configured runtimes, sorted by name.
func (c *Config) EngineRuntimes() []engine.Runtime {
	names := make([]string, 0, len(c.Runtimes))
	for name := range c.Runtimes {
		names = append(names, name)
	}
	sort.Strings(names)

	runtimes := make([]engine.Runtime, 0, len(names))
	for _, name := range names {
		rc := c.Runtimes[name]
		runtimes = append(runtimes, engine.Runtime{
			Name:         name,
			Extensions:   rc.Extensions,
			Command:      rc.Command,
			Prelude:      rc.Prelude,
			Epilogue:     rc.Epilogue,
			DebugMarkers: rc.DebugMarkers,
		})
	}
	return runtimes
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/cftest/internal/schema"
)

// Load reads and parses a .cftest.yaml, .cftest.yml or .cftest.toml file.
// The format is chosen by the file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, _, err := LoadWithWarnings(path, data)
	return cfg, err
}

// LoadWithDefaults reads a config file and applies default values.
func LoadWithDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadAndValidate reads a config file, applies defaults, validates, and returns warnings.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, unknownWarnings, err := LoadWithWarnings(path, data)
	if err != nil {
		return nil, nil, err
	}

	if err := applyDefaults(cfg); err != nil {
		return nil, nil, err
	}

	validationWarnings, err := Validate(cfg)

	allWarnings := make([]string, 0, len(unknownWarnings)+len(validationWarnings))
	allWarnings = append(allWarnings, unknownWarnings...)
	allWarnings = append(allWarnings, validationWarnings...)

	if err != nil {
		return nil, allWarnings, err
	}

	return cfg, allWarnings, nil
}

// LoadWithWarnings parses config data and returns any unknown field warnings.
// The document is checked against the embedded JSON schema before it is
// decoded into a Config.
func LoadWithWarnings(path string, data []byte) (*Config, []string, error) {
	doc, err := decodeDocument(path, data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := schema.ValidateConfig(normalized); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(normalized, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, detectUnknownFields(doc), nil
}

// decodeDocument decodes YAML or TOML into a generic document.
func decodeDocument(path string, data []byte) (map[string]any, error) {
	doc := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

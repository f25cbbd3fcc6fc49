package config

import (
	"errors"
	"os"
	"path/filepath"
)

// FileNames are the configuration file names looked up in each directory,
// in order of preference.
var FileNames = []string{".cftest.yaml", ".cftest.yml", ".cftest.toml"}

// ErrNoConfigFile is returned when no configuration file is found.
var ErrNoConfigFile = errors.New("no .cftest configuration file found")

// FindFile walks up from the current working directory until it finds a
// configuration file.
func FindFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindFileFrom(cwd)
}

// FindFileFrom walks up from the given directory until it finds a
// configuration file.
func FindFileFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNoConfigFile
		}
		dir = parent
	}
}

// Resolve loads the configuration at path, or the discovered one when path is
// empty. Without any file the defaults are returned.
func Resolve(path string) (*Config, string, []string, error) {
	if path == "" {
		found, err := FindFile()
		if errors.Is(err, ErrNoConfigFile) {
			cfg, err := Default()
			return cfg, "", nil, err
		}
		if err != nil {
			return nil, "", nil, err
		}
		path = found
	}

	cfg, warnings, err := LoadAndValidate(path)
	if err != nil {
		return nil, path, warnings, err
	}
	return cfg, path, warnings, nil
}

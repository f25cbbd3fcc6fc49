package cli

import (
	"os"
	"path/filepath"
	"strings"

	harnesserrors "github.com/AndreyAkinshin/cftest/internal/errors"
)

// resolveSource returns the absolute path of the source file named by arg.
// A name without an extension gets defaultExt.
func resolveSource(arg, defaultExt string) (string, error) {
	path := arg
	if filepath.Ext(path) == "" {
		path += "." + strings.TrimPrefix(defaultExt, ".")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", harnesserrors.Wrap(err, "failed to resolve source path")
	}

	if !isFile(abs) {
		return "", harnesserrors.NotFound(abs)
	}
	return abs, nil
}

// fixtureCandidates lists the fixture paths tried for source, in order:
// the explicit argument, the source path without its extension, the same
// with a .test extension, then the literal names.
func fixtureCandidates(source, explicit string, names []string) []string {
	var candidates []string
	if explicit != "" {
		candidates = append(candidates, explicit)
	}

	stem := strings.TrimSuffix(source, filepath.Ext(source))
	candidates = append(candidates, stem, stem+".test")
	candidates = append(candidates, names...)
	return candidates
}

// locateFixture returns the first candidate that is a regular file.
func locateFixture(source, explicit string, names []string) (string, error) {
	for _, candidate := range fixtureCandidates(source, explicit, names) {
		if isFile(candidate) {
			return candidate, nil
		}
	}
	return "", harnesserrors.Config("file with tests not found")
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

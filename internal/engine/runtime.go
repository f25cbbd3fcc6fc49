package engine

import (
	"path/filepath"
	"sort"
	"strings"
)

// Runtime describes how to execute source files of one language.
//
// The program file is Prelude + source + Epilogue. The prelude is expected to
// define the readline/write/print primitives over standard input and output.
type Runtime struct {
	Name         string
	Extensions   []string // Without the leading dot
	Command      []string // Interpreter and its arguments; the program file is appended
	Prelude      string
	Epilogue     string
	DebugMarkers []string // Substrings that indicate leftover debug output
}

// HasExtension reports whether ext (with or without the leading dot) belongs
// to the runtime.
func (r Runtime) HasExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, e := range r.Extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// Detect picks the runtime for a source file by its extension.
// Runtimes are tried in name order; the first match wins.
func Detect(path string, runtimes []Runtime) (Runtime, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return Runtime{}, false
	}

	sorted := make([]Runtime, len(runtimes))
	copy(sorted, runtimes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	for _, r := range sorted {
		if r.HasExtension(ext) {
			return r, true
		}
	}
	return Runtime{}, false
}

// Find returns the runtime with the given name.
func Find(name string, runtimes []Runtime) (Runtime, bool) {
	for _, r := range runtimes {
		if r.Name == name {
			return r, true
		}
	}
	return Runtime{}, false
}

// Names returns the sorted runtime names.
func Names(runtimes []Runtime) []string {
	names := make([]string, 0, len(runtimes))
	for _, r := range runtimes {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

package tests

import (
	"regexp"
	"sort"
	"strings"
)

// spacedEquals matches "=" together with the horizontal whitespace around it.
var spacedEquals = regexp.MustCompile(`[ \t]*=[ \t]*`)

// ParseParams parses a parameter line such as "precision-digits = 6 strict".
//
// Tokens without "=" or with an empty value become flags. The last occurrence
// of a repeated name wins. Parsing never fails; bad values are reported later
// as warnings.
func ParseParams(line string) ParamSet {
	params := make(ParamSet)

	normalized := spacedEquals.ReplaceAllString(line, "=")
	for _, token := range strings.Fields(normalized) {
		name, value, found := strings.Cut(token, "=")
		if !found || value == "" {
			params[name] = ParamValue{Flag: true}
			continue
		}
		params[name] = ParamValue{Value: value}
	}

	return params
}

// SortedNames returns parameter names in sorted order for deterministic iteration.
func (p ParamSet) SortedNames() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// detectUnknownFields compares the decoded document with known struct fields.
func detectUnknownFields(doc map[string]any) []string {
	var warnings []string

	knownTopLevel := getJSONFields(reflect.TypeOf(Config{}))
	for _, key := range sortedKeys(doc) {
		if key == "$schema" {
			continue // $schema is explicitly allowed and ignored
		}
		if !knownTopLevel[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q at root level (ignored)", key))
		}
	}

	if comparison, ok := doc["comparison"].(map[string]any); ok {
		known := getJSONFields(reflect.TypeOf(ComparisonConfig{}))
		for _, key := range sortedKeys(comparison) {
			if !known[key] {
				warnings = append(warnings, fmt.Sprintf("unknown field %q in comparison (ignored)", key))
			}
		}
	}

	if runtimes, ok := doc["runtimes"].(map[string]any); ok {
		warnings = append(warnings, checkRuntimesUnknownFields(runtimes)...)
	}

	return warnings
}

func checkRuntimesUnknownFields(runtimes map[string]any) []string {
	var warnings []string

	knownRuntimeFields := getJSONFields(reflect.TypeOf(RuntimeConfig{}))
	for _, name := range sortedKeys(runtimes) {
		fields, ok := runtimes[name].(map[string]any)
		if !ok {
			continue
		}
		for _, key := range sortedKeys(fields) {
			if !knownRuntimeFields[key] {
				warnings = append(warnings, fmt.Sprintf("unknown field %q in runtime %q (ignored)", key, name))
			}
		}
	}

	return warnings
}

// getJSONFields returns a map of known JSON field names for a struct type.
func getJSONFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name != "" {
			fields[name] = true
		}
	}
	return fields
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

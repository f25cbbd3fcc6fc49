package tests

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// paragraphBreak matches three or more consecutive newlines.
var paragraphBreak = regexp.MustCompile(`\n{3,}`)

// Split turns fixture text into an optional parameter line and ordered test pairs.
//
// Lines are trimmed individually, so whitespace-only lines separate paragraphs
// like empty ones. When the paragraph count is odd the first paragraph is the
// parameter line.
func Split(text string) (string, []RawTest, error) {
	paragraphs := Paragraphs(text)
	if len(paragraphs) == 0 {
		return "", nil, ErrFixtureNotFound
	}

	var paramLine string
	if len(paragraphs)%2 == 1 {
		paramLine = paragraphs[0]
		paragraphs = paragraphs[1:]
	}

	tests := make([]RawTest, 0, len(paragraphs)/2)
	for i := 0; i+1 < len(paragraphs); i += 2 {
		tests = append(tests, RawTest{
			Input:    paragraphs[i],
			Expected: paragraphs[i+1],
		})
	}

	return paramLine, tests, nil
}

// Paragraphs splits text into trimmed, non-empty paragraphs separated by blank lines.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	joined := strings.TrimSpace(strings.Join(lines, "\n"))
	if joined == "" {
		return nil
	}

	joined = paragraphBreak.ReplaceAllString(joined, "\n\n")
	return strings.Split(joined, "\n\n")
}

// Parse splits fixture text and parses its parameter line.
func Parse(text string) (*Suite, error) {
	paramLine, tests, err := Split(text)
	if err != nil {
		return nil, err
	}
	return &Suite{
		ParamLine: paramLine,
		Params:    ParseParams(paramLine),
		Tests:     tests,
	}, nil
}

// LoadSuite reads and parses a fixture file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	suite, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return suite, nil
}

// Package report lays out failed tests as aligned three-column blocks and
// derives the summary warnings printed before them.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/AndreyAkinshin/cftest/internal/tests"
)

// ColumnMargin is the number of spaces between columns.
const ColumnMargin = 3

// Row is one line of a failure block. Input and Expected are padded to their
// column widths; Actual is not padded.
type Row struct {
	Input    string
	Expected string
	Actual   string
}

// String concatenates the cells of the row.
func (r Row) String() string {
	return r.Input + r.Expected + r.Actual
}

// Block is the rendered form of one failure record.
type Block struct {
	Rows []Row
}

// Lines returns the rows of the block as plain strings.
func (b Block) Lines() []string {
	lines := make([]string, len(b.Rows))
	for i, r := range b.Rows {
		lines[i] = r.String()
	}
	return lines
}

// Render lays out every failure record as a block of aligned rows.
func Render(failures []tests.FailureRecord) []Block {
	blocks := make([]Block, 0, len(failures))
	for _, f := range failures {
		blocks = append(blocks, RenderFailure(f))
	}
	return blocks
}

// RenderFailure lays out a single failure record.
//
// All three columns are padded at the end with empty lines to the same length.
// Column width is the widest line plus ColumnMargin.
func RenderFailure(f tests.FailureRecord) Block {
	inputs := strings.Split(f.Input, "\n")
	expectations := strings.Split(f.Expected, "\n")
	actuals := strings.Split(f.Actual, "\n")

	height := max(len(inputs), len(expectations), len(actuals))
	inputs = padLines(inputs, height)
	expectations = padLines(expectations, height)
	actuals = padLines(actuals, height)

	inputWidth := columnWidth(inputs)
	expectedWidth := columnWidth(expectations)

	rows := make([]Row, height)
	for i := range rows {
		rows[i] = Row{
			Input:    padRight(inputs[i], inputWidth),
			Expected: padRight(expectations[i], expectedWidth),
			Actual:   actuals[i],
		}
	}
	return Block{Rows: rows}
}

// Text renders failures as plain text, with a blank line between blocks.
func Text(failures []tests.FailureRecord) string {
	var sb strings.Builder
	for i, b := range Render(failures) {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, line := range b.Lines() {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func padLines(lines []string, n int) []string {
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

func columnWidth(lines []string) int {
	width := 0
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > width {
			width = w
		}
	}
	return width + ColumnMargin
}

func padRight(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/AndreyAkinshin/cftest/internal/report"
)

// Writer handles CLI output formatting.
//
// Warnings and failure grids go to out; fatal errors go to err.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	quiet bool

	palette palette
}

// New creates a Writer on the process streams. Color is enabled when
// standard output is a terminal.
func New() *Writer {
	return NewWithWriters(os.Stdout, os.Stderr, IsTerminal(os.Stdout))
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	w := &Writer{
		out: out,
		err: err,
	}
	w.SetColor(color)
	return w
}

// SetQuiet enables or disables quiet mode. Quiet mode suppresses warnings.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// SetColor enables or disables colorized output.
func (w *Writer) SetColor(enabled bool) {
	w.color = enabled
	w.palette = newPalette(enabled)
}

// Color reports whether colorized output is enabled.
func (w *Writer) Color() bool {
	return w.color
}

// Out returns the standard output stream.
func (w *Writer) Out() io.Writer {
	return w.out
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Error writes to stderr.
func (w *Writer) Error(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format, args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Warning prints a summary warning on its own line (skipped in quiet mode).
func (w *Writer) Warning(msg string) {
	if w.quiet {
		return
	}
	w.Println("%s", w.palette.warning.Sprint(msg))
}

// Warnings prints each warning in order.
func (w *Writer) Warnings(msgs []string) {
	for _, msg := range msgs {
		w.Warning(msg)
	}
}

// Failures prints failure blocks separated by blank lines.
//
// The input column is yellow, expected green and actual red, all bold.
func (w *Writer) Failures(blocks []report.Block) {
	for i, b := range blocks {
		if i > 0 {
			w.Println("")
		}
		for _, row := range b.Rows {
			w.Println("%s%s%s",
				w.palette.input.Sprint(row.Input),
				w.palette.expected.Sprint(row.Expected),
				w.palette.actual.Sprint(row.Actual))
		}
	}
}

// ErrorPrefix prints an error message with cftest prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Errorln("%s %s", w.palette.errorPrefix.Sprint("cftest:"), msg)
}

// Fault prints the report of a crashed program: the input it crashed on
// followed by the failure details.
func (w *Writer) Fault(input string, detail string) {
	w.ErrorPrefix("execution failed on input:")
	for _, line := range strings.Split(input, "\n") {
		w.Errorln("%s", w.palette.input.Sprint(line))
	}
	if detail = strings.TrimRight(detail, "\n"); detail != "" {
		w.Errorln("%s", detail)
	}
}

// Hint prints a dim hint message.
func (w *Writer) Hint(format string, args ...interface{}) {
	w.Println("%s", w.palette.dim.Sprint(fmt.Sprintf(format, args...)))
}

// HelpTitle formats the main help title line.
func (w *Writer) HelpTitle(title string) {
	w.Println("%s", w.palette.title.Sprint(title))
}

// HelpSection formats a section header (e.g., "Flags:").
func (w *Writer) HelpSection(title string) {
	w.Println("")
	w.Println("%s", w.palette.section.Sprint(title))
}

// HelpUsage formats usage lines.
func (w *Writer) HelpUsage(usage string) {
	w.Println("  %s", w.colorPlaceholders(usage))
}

// HelpCommand formats a named entry with its description.
func (w *Writer) HelpCommand(name, description string, width int) {
	w.Println("  %s%s  %s", w.palette.command.Sprint(name), padding(name, width), w.palette.dim.Sprint(description))
}

// HelpFlag formats a flag with its description.
func (w *Writer) HelpFlag(name, description string, width int) {
	w.Println("  %s%s  %s", w.palette.flag.Sprint(name), padding(name, width), w.palette.dim.Sprint(description))
}

// HelpExample formats an example command with description.
func (w *Writer) HelpExample(command, description string) {
	w.Println("  %s", w.palette.example.Sprint(command))
	if description != "" {
		w.Println("      %s", w.palette.dim.Sprint(description))
	}
}

// colorPlaceholders highlights <placeholder> and [optional] patterns in text.
func (w *Writer) colorPlaceholders(text string) string {
	if !w.color {
		return text
	}
	var result strings.Builder
	i := 0
	for i < len(text) {
		if text[i] == '<' || text[i] == '[' {
			closing := ">"
			if text[i] == '[' {
				closing = "]"
			}
			if end := strings.Index(text[i:], closing); end != -1 {
				result.WriteString(w.palette.placeholder.Sprint(text[i : i+end+1]))
				i += end + 1
				continue
			}
		}
		result.WriteByte(text[i])
		i++
	}
	return result.String()
}

func padding(name string, width int) string {
	if n := width - len(name); n > 0 {
		return strings.Repeat(" ", n)
	}
	return ""
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// palette holds the color roles used by the Writer.
type palette struct {
	input       *color.Color
	expected    *color.Color
	actual      *color.Color
	warning     *color.Color
	errorPrefix *color.Color
	title       *color.Color
	section     *color.Color
	command     *color.Color
	flag        *color.Color
	placeholder *color.Color
	example     *color.Color
	dim         *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		input:       mk(color.FgYellow, color.Bold),
		expected:    mk(color.FgGreen, color.Bold),
		actual:      mk(color.FgRed, color.Bold),
		warning:     mk(color.FgYellow),
		errorPrefix: mk(color.FgRed),
		title:       mk(color.FgCyan, color.Bold),
		section:     mk(color.FgYellow, color.Bold),
		command:     mk(color.FgCyan, color.Bold),
		flag:        mk(color.FgYellow),
		placeholder: mk(color.FgGreen),
		example:     mk(color.FgCyan),
		dim:         mk(color.Faint),
	}
}

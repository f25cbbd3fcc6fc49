package cli

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/cftest/internal/config"
	"github.com/AndreyAkinshin/cftest/internal/output"
)

// Help text alignment widths for consistent formatting.
const (
	helpFlagWidth    = 18
	helpRuntimeWidth = 8
)

func printUsage(w *output.Writer, opts *Options) {
	w.HelpTitle("cftest - run a solution against the tests in a fixture file")

	w.HelpSection("Usage:")
	w.HelpUsage("cftest <source-file> [fixture-file] [flags]")

	w.HelpSection("Fixture Lookup:")
	w.Println("  The fixture file is the first existing file of: [fixture-file],")
	w.Println("  the source path without extension, the same with .test, then the")
	w.Println("  configured fixture names (default: tests, test).")

	w.HelpSection("Fixture Format:")
	w.Println("  Paragraphs separated by blank lines: input, expected output, input, ...")
	w.Println("  An odd paragraph count makes the first paragraph a parameter line.")
	w.Println("  Prefix an input with + to run only marked tests, or - to skip it.")

	w.HelpSection("Parameters:")
	w.HelpFlag("precision-digits=<n>", "Compare numbers with absolute error below 10^-n", helpFlagWidth+4)
	w.HelpFlag("empty-output-symbol=<s>", "Expectation meaning \"prints nothing\" (default @)", helpFlagWidth+4)

	printRuntimes(w, opts)

	w.HelpSection("Flags:")
	w.HelpFlag("--runtime <name>", "Runtime to execute the source with", helpFlagWidth)
	w.HelpFlag("--config <path>", "Configuration file", helpFlagWidth)
	w.HelpFlag("--color <mode>", "Colorize output (auto, always, never)", helpFlagWidth)
	w.HelpFlag("-q, --quiet", "Suppress warnings", helpFlagWidth)
	w.HelpFlag("-v, --verbose", "Log diagnostics to stderr", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidth)
	w.HelpFlag("--version", "Show version", helpFlagWidth)

	w.HelpSection("Examples:")
	w.HelpExample("cftest 1A.js", "Run 1A.js against 1A, 1A.test, tests or test")
	w.HelpExample("cftest 1A", "Same, with the default extension appended")
	w.HelpExample("cftest solve.py cases.txt", "Run a Python solution against cases.txt")
	w.Println("")
}

// printRuntimes lists the configured runtimes. The configuration is loaded
// best-effort: help never fails on a broken config file.
func printRuntimes(w *output.Writer, opts *Options) {
	cfg, _, _, err := config.Resolve(opts.ConfigPath)
	if err != nil {
		if cfg, err = config.Default(); err != nil {
			return
		}
	}

	titleCase := cases.Title(language.English)
	w.HelpSection("Runtimes:")
	for _, rt := range cfg.EngineRuntimes() {
		exts := make([]string, len(rt.Extensions))
		for i, ext := range rt.Extensions {
			exts[i] = "." + ext
		}
		w.HelpCommand(rt.Name, fmt.Sprintf("%s (%s): %s",
			titleCase.String(rt.Name), strings.Join(exts, ", "), strings.Join(rt.Command, " ")), helpRuntimeWidth)
	}
}

// Package cli provides the command-line interface of cftest.
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	harnesserrors "github.com/AndreyAkinshin/cftest/internal/errors"
	"github.com/AndreyAkinshin/cftest/internal/engine"
	"github.com/AndreyAkinshin/cftest/internal/logging"
	"github.com/AndreyAkinshin/cftest/internal/output"
)

// Version is set at build time.
var Version = "dev"

// Options holds parsed command-line flags.
type Options struct {
	Runtime    string
	ConfigPath string
	Color      string
	Verbose    bool
	Quiet      bool

	colorSet bool // --color was given explicitly
}

// Run executes the CLI with the given arguments and returns an exit code.
// SIGINT and SIGTERM stop the program under test.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, args, os.Stdout, os.Stderr, output.IsTerminal(os.Stdout))
}

// run is Run with explicit streams. tty tells whether stdout is a terminal.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, tty bool) int {
	w := output.NewWithWriters(stdout, stderr, false)
	opts := &Options{}

	cmd := newRootCmd(w, opts, stderr, tty)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		reportError(w, err)
		return harnesserrors.GetExitCode(err)
	}
	return harnesserrors.ExitSuccess
}

func newRootCmd(w *output.Writer, opts *Options, stderr io.Writer, tty bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cftest <source-file> [fixture-file]",
		Short: "Run a competitive-programming solution against a fixture file",
		Args:  cobra.MaximumNArgs(2),

		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.colorSet = cmd.Flags().Changed("color")
			if err := validateOptions(opts); err != nil {
				return err
			}
			logging.Init(logging.LevelFor(opts.Verbose), stderr)
			w.SetQuiet(opts.Quiet)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), w, opts, args, stderr, tty)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Runtime, "runtime", "", "runtime to execute the source with (default: by file extension)")
	flags.StringVar(&opts.ConfigPath, "config", "", "configuration file (default: nearest .cftest.yaml/.yml/.toml)")
	flags.StringVar(&opts.Color, "color", "auto", "colorize output (auto|always|never)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log diagnostics to stderr")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress warnings")

	cmd.SetOut(w.Out())
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("cftest {{.Version}}\n")
	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		w.SetColor(tty)
		printUsage(w, opts)
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return harnesserrors.WrapConfig(err, "invalid arguments")
	})

	return cmd
}

// validateOptions checks that flag values are valid.
func validateOptions(opts *Options) error {
	if opts.Quiet && opts.Verbose {
		return harnesserrors.Config("--quiet and --verbose are mutually exclusive")
	}
	switch opts.Color {
	case "auto", "always", "never":
	default:
		return harnesserrors.Configf("invalid --color value %q (valid values: auto, always, never)", opts.Color)
	}
	return nil
}

// reportError prints a fatal error to stderr.
func reportError(w *output.Writer, err error) {
	var fault *engine.Fault
	if harnesserrors.Is(err, harnesserrors.KindFault) && errors.As(err, &fault) {
		w.Fault(fault.Input, fault.Error())
		return
	}
	w.ErrorPrefix("%v", err)
}

package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/AndreyAkinshin/cftest/internal/config"
	"github.com/AndreyAkinshin/cftest/internal/engine"
	harnesserrors "github.com/AndreyAkinshin/cftest/internal/errors"
	"github.com/AndreyAkinshin/cftest/internal/output"
	"github.com/AndreyAkinshin/cftest/internal/report"
	"github.com/AndreyAkinshin/cftest/internal/runner"
	"github.com/AndreyAkinshin/cftest/internal/tests"
)

// runCheck runs the source file named by args[0] against its fixture file.
func runCheck(ctx context.Context, w *output.Writer, opts *Options, args []string, stderr io.Writer, tty bool) error {
	if len(args) == 0 {
		return harnesserrors.Config("provide source file as first argument")
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	mode := cfg.Color
	if opts.colorSet {
		mode = opts.Color
	}
	w.SetColor(colorEnabled(mode, tty))

	source, err := resolveSource(args[0], cfg.DefaultExtension)
	if err != nil {
		return err
	}

	code, err := os.ReadFile(source)
	if err != nil {
		return harnesserrors.Wrap(err, "failed to read source file")
	}
	if strings.TrimSpace(string(code)) == "" {
		return harnesserrors.Config("source file is empty")
	}

	var explicit string
	if len(args) > 1 {
		explicit = args[1]
	}
	fixturePath, err := locateFixture(source, explicit, cfg.FixtureNames)
	if err != nil {
		return err
	}
	slog.Debug("fixture located", "path", fixturePath)

	suite, err := tests.LoadSuite(fixturePath)
	if errors.Is(err, tests.ErrFixtureNotFound) {
		return harnesserrors.Config("file with tests not found")
	}
	if err != nil {
		return harnesserrors.Wrap(err, "failed to read file with tests")
	}

	rt, err := selectRuntime(opts.Runtime, source, cfg.EngineRuntimes())
	if err != nil {
		return err
	}
	slog.Debug("runtime selected", "runtime", rt.Name, "command", rt.Command)

	proc, err := engine.Load(rt, source, string(code),
		engine.WithStderr(stderr),
		engine.WithWorkDir(filepath.Dir(source)))
	if err != nil {
		return harnesserrors.Wrap(err, "failed to prepare program")
	}
	defer func() {
		if err := proc.Close(); err != nil {
			slog.Debug("failed to remove program file", "error", err)
		}
	}()

	res, err := runner.New(proc, compareOptions(cfg)).Run(ctx, suite)
	if err != nil {
		return runError(ctx, err)
	}

	w.Warnings(report.Warnings(report.WarningInput{
		Params:       res.Params,
		Source:       string(code),
		DebugMarkers: rt.DebugMarkers,
		Ran:          res.Ran,
		Total:        res.Selection.Total,
		Failed:       len(res.Failures),
	}))
	w.Failures(report.Render(res.Failures))
	return nil
}

// loadConfig resolves the configuration and logs its warnings.
func loadConfig(opts *Options) (*config.Config, error) {
	cfg, path, warnings, err := config.Resolve(opts.ConfigPath)
	if err != nil {
		return nil, harnesserrors.WrapConfig(err, "invalid config file")
	}
	if path != "" {
		slog.Debug("config loaded", "path", path)
	}
	for _, warning := range warnings {
		slog.Warn(warning, "config", path)
	}
	return cfg, nil
}

// selectRuntime picks the runtime named by flag, or detects it from the
// source extension.
func selectRuntime(name, source string, runtimes []engine.Runtime) (engine.Runtime, error) {
	if name != "" {
		rt, ok := engine.Find(name, runtimes)
		if !ok {
			return engine.Runtime{}, harnesserrors.Configf("unknown runtime %q (available: %s)",
				name, strings.Join(engine.Names(runtimes), ", "))
		}
		return rt, nil
	}

	rt, ok := engine.Detect(source, runtimes)
	if !ok {
		return engine.Runtime{}, harnesserrors.Configf("no runtime for %q files; use --runtime (available: %s)",
			filepath.Ext(source), strings.Join(engine.Names(runtimes), ", "))
	}
	return rt, nil
}

// compareOptions builds the comparison defaults from the configuration.
func compareOptions(cfg *config.Config) tests.CompareOptions {
	opts := tests.DefaultCompareOptions()
	if cfg.Comparison == nil {
		return opts
	}
	if cfg.Comparison.EmptyOutputSymbol != "" {
		opts.EmptyOutputSymbol = cfg.Comparison.EmptyOutputSymbol
	}
	if cfg.Comparison.PrecisionDigits != nil {
		opts.Tolerance = true
		opts.PrecisionDigits = float64(*cfg.Comparison.PrecisionDigits)
	}
	return opts
}

// runError maps a failed run to a harness error.
func runError(ctx context.Context, err error) error {
	var fault *engine.Fault
	switch {
	case errors.Is(err, runner.ErrNoTests):
		return harnesserrors.Config("no tests to run")
	case ctx.Err() != nil:
		return harnesserrors.Wrap(ctx.Err(), "interrupted")
	case errors.As(err, &fault):
		return harnesserrors.Fault(fault.Input, fault)
	default:
		return harnesserrors.Wrap(err, "run failed")
	}
}

// colorEnabled resolves a color mode for the given terminal state.
func colorEnabled(mode string, tty bool) bool {
	switch config.ColorMode(mode) {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return tty
	}
}

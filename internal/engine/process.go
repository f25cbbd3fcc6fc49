package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// stderrTailSize bounds the diagnostic output kept for fault messages.
const stderrTailSize = 4096

// Process runs source code through an external interpreter, one child process
// per test. The program file is written once by Load.
type Process struct {
	runtime Runtime
	tmpDir  string
	script  string
	workDir string
	stderr  io.Writer
}

// ProcessOption configures a Process.
type ProcessOption func(*Process)

// WithStderr forwards the program's diagnostic output to w.
func WithStderr(w io.Writer) ProcessOption {
	return func(p *Process) {
		p.stderr = w
	}
}

// WithWorkDir sets the working directory of the child processes.
func WithWorkDir(dir string) ProcessOption {
	return func(p *Process) {
		p.workDir = dir
	}
}

// Load prepares source for execution with rt. sourceName is used for the
// program file extension. Call Close to remove the program file.
func Load(rt Runtime, sourceName, source string, opts ...ProcessOption) (*Process, error) {
	if len(rt.Command) == 0 {
		return nil, fmt.Errorf("runtime %q: no command configured", rt.Name)
	}
	if _, err := exec.LookPath(rt.Command[0]); err != nil {
		return nil, fmt.Errorf("runtime %q: command %q not found: %w", rt.Name, rt.Command[0], err)
	}

	tmpDir, err := os.MkdirTemp("", "cftest-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create program directory: %w", err)
	}

	script := filepath.Join(tmpDir, "main"+filepath.Ext(sourceName))
	if err := os.WriteFile(script, []byte(assemble(rt, source)), 0600); err != nil {
		_ = os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("failed to write program file: %w", err)
	}

	p := &Process{
		runtime: rt,
		tmpDir:  tmpDir,
		script:  script,
		stderr:  io.Discard,
	}
	for _, opt := range opts {
		opt(p)
	}

	slog.Debug("program loaded", "runtime", rt.Name, "script", script)
	return p, nil
}

// assemble wraps source with the runtime's prelude and epilogue.
func assemble(rt Runtime, source string) string {
	var sb strings.Builder
	sb.WriteString(rt.Prelude)
	if rt.Prelude != "" && !strings.HasSuffix(rt.Prelude, "\n") {
		sb.WriteByte('\n')
	}
	sb.WriteString(source)
	if !strings.HasSuffix(source, "\n") {
		sb.WriteByte('\n')
	}
	sb.WriteString(rt.Epilogue)
	return sb.String()
}

// Runtime returns the runtime the process was loaded with.
func (p *Process) Runtime() Runtime {
	return p.runtime
}

// Run starts the interpreter, feeds the input read through ReadLine on
// standard input and forwards standard output to Write.
func (p *Process) Run(ctx context.Context, prims IO) error {
	args := make([]string, 0, len(p.runtime.Command))
	args = append(args, p.runtime.Command[1:]...)
	args = append(args, p.script)

	cmd := exec.CommandContext(ctx, p.runtime.Command[0], args...)
	cmd.Dir = p.workDir
	cmd.Env = os.Environ()

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return &Fault{Err: err}
	}

	tail := &tailBuffer{limit: stderrTailSize}

	var g errgroup.Group
	g.Go(func() error {
		defer func() { _ = stdin.Close() }()
		// The program may exit without reading its input; a broken pipe
		// here is not a failure of its own.
		_, _ = io.WriteString(stdin, feed(prims))
		return nil
	})
	g.Go(func() error {
		buf := make([]byte, 32*1024)
		for {
			n, err := stdout.Read(buf)
			if n > 0 {
				prims.Write(string(buf[:n]))
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
		}
	})
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(p.stderr, tail), stderr)
		return err
	})

	pumpErr := g.Wait()
	waitErr := cmd.Wait()

	if waitErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("execution interrupted: %w", ctxErr)
		}
		return &Fault{Err: waitErr, Stderr: tail.String()}
	}
	if pumpErr != nil {
		return &Fault{Err: pumpErr, Stderr: tail.String()}
	}
	return nil
}

// Close removes the program file.
func (p *Process) Close() error {
	return os.RemoveAll(p.tmpDir)
}

// feed drains the input lines and joins them into standard input text.
func feed(prims IO) string {
	var lines []string
	for {
		line, ok := prims.ReadLine()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.buf)
}

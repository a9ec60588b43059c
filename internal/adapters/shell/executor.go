// Package shell runs external commands and traces them to a writer.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/docbuild/internal/core/domain"
	"go.trai.ch/docbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	tracer ports.Tracer
	stdout io.Writer
	stderr io.Writer
	trace  io.Writer
	env    []string

	mu sync.Mutex
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets the streams inherited by non-capturing commands and the
// stream receiving the command trace.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
		r.trace = stdout
	}
}

// WithEnv replaces the environment used for PATH lookup and passed to commands.
func WithEnv(env []string) Option {
	return func(r *Runner) {
		r.env = env
	}
}

// NewRunner creates a Runner writing to the process streams.
func NewRunner(tracer ports.Tracer, opts ...Option) *Runner {
	r := &Runner{
		tracer: tracer,
		stdout: os.Stdout,
		stderr: os.Stderr,
		trace:  os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.stdout = r.guard(r.stdout)
	r.stderr = r.guard(r.stderr)
	r.trace = &lockedWriter{mu: &r.mu, w: r.trace}
	return r
}

// guard serializes writes to w through the runner's mutex. Files are
// handed to children directly and need no guard.
func (r *Runner) guard(w io.Writer) io.Writer {
	if _, ok := w.(*os.File); ok || w == nil {
		return w
	}
	return &lockedWriter{mu: &r.mu, w: w}
}

// lockedWriter writes to w while holding mu.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// Run prints the command, executes it and returns its captured output.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (string, error) {
	if cmd.Name == "" {
		return "", domain.ErrEmptyCommand
	}

	ctx, span := r.tracer.Start(ctx, cmd.Description)
	defer span.End()
	span.SetAttribute("command", cmd.Line())
	if cmd.Dir != "" {
		span.SetAttribute("dir", cmd.Dir)
	}

	r.tracef("%s: %s\n", cmd.Description, cmd.Line())

	out, err := r.execute(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	if !cmd.Capture {
		return "", nil
	}

	stripped := strings.TrimRightFunc(out, isSpace)
	r.echo(cmd.Description, stripped)
	return stripped, nil
}

func (r *Runner) execute(ctx context.Context, cmd domain.Command) (string, error) {
	env := r.env
	if env == nil {
		env = os.Environ()
	}

	executable := cmd.Name
	if !filepath.IsAbs(cmd.Name) && !strings.ContainsRune(cmd.Name, filepath.Separator) {
		if lp, err := LookPath(cmd.Name, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // commands are built from configuration
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	c.Dir = cmd.Dir
	c.Env = env

	var captured bytes.Buffer
	if cmd.Capture {
		c.Stdout = &captured
	} else {
		c.Stdout = r.stdout
	}
	if !cmd.QuietStderr {
		c.Stderr = r.stderr
	}

	if err := c.Run(); err != nil {
		return "", commandError(err)
	}
	return strings.ToValidUTF8(captured.String(), "�"), nil
}

// commandError joins ErrCommandFailed with the cause and its exit code.
func commandError(err error) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return errors.Join(domain.ErrCommandFailed, zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode))
}

// echo writes every non-blank line of out prefixed with description.
func (r *Runner) echo(description, out string) {
	if out == "" {
		return
	}

	var b strings.Builder
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(description)
		b.WriteString(": ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	r.tracef("%s", b.String())
}

// tracef writes one formatted block in a single Write call.
func (r *Runner) tracef(format string, args ...any) {
	_, _ = io.WriteString(r.trace, fmt.Sprintf(format, args...))
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

// ExitCode extracts the exit status of a failed command from err.
// It reports false when err does not carry one.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode(), true
	}
	return 0, false
}

// LookPath searches for an executable in the directories named by the PATH entry of env.
func LookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}

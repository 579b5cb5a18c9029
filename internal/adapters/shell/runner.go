// Package shell provides the process runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Run waits for output pipes after the process is killed.
const waitDelay = 2 * time.Second

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger  ports.Logger
	timeout time.Duration
	env     map[string]string
}

// NewRunner creates a new Runner. A zero StepTimeout disables the deadline.
func NewRunner(logger ports.Logger, settings *domain.Settings) *Runner {
	if settings == nil {
		settings = domain.DefaultSettings()
	}
	return &Runner{
		logger:  logger,
		timeout: settings.StepTimeout,
		env:     settings.Env,
	}
}

// Run executes cmd and waits for it to exit.
// It merges environments with the following priority (low to high):
// 1. os.Environ() (System base)
// 2. settings env (Host configuration)
// 3. cmd.Env (Per-command overrides)
//
// Stderr is captured and also forwarded to the logger line by line.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error) {
	if cmd.Name == "" {
		return domain.ProcessResult{}, zerr.Wrap(domain.ErrCommandFailed, "empty command")
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmdEnv := resolveEnvironment(os.Environ(), r.env, cmd.Env)

	executable := cmd.Name
	if !filepath.IsAbs(cmd.Name) {
		if lp, err := lookPath(cmd.Name, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // user provided command

	// exec.CommandContext sets Args[0] to the executable path.
	// Keep the name as invoked.
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	c.Env = cmdEnv
	c.WaitDelay = waitDelay
	if cmd.Stdin != "" {
		c.Stdin = strings.NewReader(cmd.Stdin)
	}

	var stdout, stderr bytes.Buffer
	lw := &logWriter{logger: r.logger}
	c.Stdout = &stdout
	c.Stderr = io.MultiWriter(&stderr, lw)

	err := c.Run()
	lw.Flush()

	result := domain.ProcessResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			result.ExitCode = -1
			return result, zerr.With(zerr.With(zerr.Wrap(domain.ErrCommandTimeout, "command timed out"),
				"command", cmd.Name), "timeout", r.timeout.String())
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}

		result.ExitCode = -1
		return result, zerr.With(zerr.Wrap(err, "failed to start command"), "command", cmd.Name)
	}

	return result, nil
}

// MustRun is Run that treats a non-zero exit status as domain.ErrCommandFailed.
func (r *Runner) MustRun(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error) {
	result, err := r.Run(ctx, cmd)
	if err != nil {
		return result, err
	}
	if result.ExitCode != 0 {
		failed := zerr.With(zerr.Wrap(domain.ErrCommandFailed, "command exited with non-zero status"), "command", cmd.Name)
		failed = zerr.With(failed, "exit_code", result.ExitCode)
		return result, zerr.With(failed, "stderr", strings.TrimSpace(result.Stderr))
	}
	return result, nil
}

// logWriter forwards complete lines to the logger and holds partial ones.
type logWriter struct {
	logger  ports.Logger
	pending []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.pending[:i]))
		w.pending = w.pending[i+1:]
	}
	return len(p), nil
}

// Flush emits any trailing partial line.
func (w *logWriter) Flush() {
	if len(w.pending) > 0 {
		w.emit(string(w.pending))
		w.pending = nil
	}
}

func (w *logWriter) emit(line string) {
	if w.logger != nil {
		w.logger.Warn(line)
	}
}

// resolveEnvironment merges environment variables with the defined priority.
func resolveEnvironment(sysEnv []string, hostEnv map[string]string, cmdEnv []string) []string {
	envMap := make(map[string]string)
	order := make([]string, 0, len(sysEnv))
	set := func(k, v string) {
		if _, exists := envMap[k]; !exists {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	for k, v := range hostEnv {
		set(k, v)
	}

	for _, entry := range cmdEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
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
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
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

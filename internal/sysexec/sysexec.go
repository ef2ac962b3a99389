// Package sysexec runs external diagnostic tools and captures their output.
//
// Failures never surface as Go errors: a missing executable becomes exit
// code 127, an executable that cannot be started 126, and a command killed
// by the optional timeout 124, each with a descriptive stderr.
package sysexec

import (
	"bytes"
	"context"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/Dieterbe/waybar-system-health/internal/logging"
)

// waitDelay bounds how long a timed out command may keep its output pipes open.
const waitDelay = 500 * time.Millisecond

// Exit codes synthesized for failures that happen outside the command itself.
const (
	ExitTimeout     = 124
	ExitCannotStart = 126
	ExitNotFound    = 127
)

// Output is what a command left behind.
type Output struct {
	Code   int
	Stdout string
	Stderr string

	// Synthesized is set when Code was made up by the runner rather than
	// returned by the command (not found, cannot start, timed out).
	Synthesized bool
}

// NotFound reports whether the executable was missing.
func (o Output) NotFound() bool {
	return o.Code == ExitNotFound
}

// Abnormal reports whether the command ended without an exit status of its
// own: the code was synthesized or a signal killed the process.
// Tools that encode results in their exit status must not decode it then.
func (o Output) Abnormal() bool {
	return o.Synthesized || o.Code < 0
}

// Runner executes a command given as an argument vector.
type Runner interface {
	Run(ctx context.Context, argv []string) Output
}

// ExecRunner runs commands with os/exec, one at a time.
type ExecRunner struct {
	// Timeout bounds each command. Zero means wait indefinitely.
	Timeout time.Duration
}

var _ Runner = (*ExecRunner)(nil)

// NewExecRunner creates a runner with the given per-command timeout.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{Timeout: timeout}
}

// Run executes argv and blocks until it exits.
func (r *ExecRunner) Run(ctx context.Context, argv []string) Output {
	logger := logging.FromContext(ctx)
	if len(argv) == 0 {
		return Output{Code: ExitNotFound, Stderr: "Command not found: (empty command)", Synthesized: true}
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if r.Timeout > 0 {
		// Kill helpers the command spawned too (sudo, shells), and stop
		// waiting for pipes a surviving grandchild still holds.
		killProcessGroup(cmd)
		cmd.WaitDelay = waitDelay
	}

	start := time.Now()
	err := cmd.Run()
	out := Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	out.Code = r.exitCode(ctx, argv, err, &out)

	logger.Debug("command finished",
		"argv", strings.Join(argv, " "),
		"code", out.Code,
		"duration", time.Since(start).Round(time.Millisecond))
	logger.Log(ctx, logging.LevelTrace, "command output",
		"argv", strings.Join(argv, " "),
		"stdout", out.Stdout,
		"stderr", out.Stderr)

	return out
}

// exitCode maps the result of cmd.Run to an exit code, appending a
// description to out.Stderr for synthesized codes.
func (r *ExecRunner) exitCode(ctx context.Context, argv []string, err error, out *Output) int {
	if err == nil {
		return 0
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		msg := "command canceled: " + argv[0]
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			msg = "command timed out after " + r.Timeout.String() + ": " + argv[0]
		}
		out.Stderr = appendLine(out.Stderr, msg)
		out.Synthesized = true
		return ExitTimeout
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// -1 when killed by a signal
		return exitErr.ExitCode()
	}

	// exited 0, but a leftover child kept the pipes open past waitDelay
	if errors.Is(err, exec.ErrWaitDelay) {
		return 0
	}

	out.Synthesized = true
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		out.Stdout = ""
		out.Stderr = "Command not found: " + argv[0]
		return ExitNotFound
	}

	out.Stderr = appendLine(out.Stderr, errors.Wrapf(err, "cannot start %s", argv[0]).Error())
	return ExitCannotStart
}

func appendLine(s, line string) string {
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s + line
}

package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ProcessResult is what a finished process left behind
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// TrimmedStdout returns stdout without surrounding whitespace
func (r ProcessResult) TrimmedStdout() string {
	return strings.TrimSpace(r.Stdout)
}

// TrimmedStderr returns stderr without surrounding whitespace
func (r ProcessResult) TrimmedStderr() string {
	return strings.TrimSpace(r.Stderr)
}

// ProcessRunner runs a shell command line and blocks until it exits.
// A non-zero exit code is reported in the result, not as an error; the error is reserved
// for processes that could not be started at all.
type ProcessRunner interface {
	Run(ctx context.Context, command string) (ProcessResult, error)
}

// ShellRunner runs commands through "sh -c"
type ShellRunner struct {
	shell  string
	logger *zap.Logger
}

// NewShellRunner creates a new ShellRunner
func NewShellRunner(logger *zap.Logger) *ShellRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShellRunner{shell: "sh", logger: logger}
}

// Run executes command and captures its exit code, stdout and stderr
func (r *ShellRunner) Run(ctx context.Context, command string) (ProcessResult, error) {
	start := time.Now()
	cmd := exec.CommandContext(ctx, r.shell, "-c", command)
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := ProcessResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return result, fmt.Errorf("start %q: %w", command, err)
	}

	r.logger.Debug("process finished",
		zap.String("command", command),
		zap.Int("exit_code", result.ExitCode),
		zap.Int("stdout_bytes", len(result.Stdout)),
		zap.Int("stderr_bytes", len(result.Stderr)),
		zap.Duration("duration", time.Since(start)),
	)
	return result, nil
}

// ShellQuote wraps s in single quotes for use in a sh command line
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Package exectest provides a scripted ProcessRunner for tests.
package exectest

import (
	"context"
	"strings"
	"sync"

	"ppe2e/internal/execution"
)

// Runner answers commands from a table instead of starting processes.
// Commands are matched exactly first, then by prefix; unknown commands behave like a
// missing binary.
type Runner struct {
	mu      sync.Mutex
	results map[string]execution.ProcessResult
	prefix  []prefixHandler
	calls   []string
}

type prefixHandler struct {
	prefix string
	fn     func(command string) (execution.ProcessResult, error)
}

// NewRunner creates an empty Runner
func NewRunner() *Runner {
	return &Runner{results: make(map[string]execution.ProcessResult)}
}

// On sets the result for an exact command line
func (r *Runner) On(command string, result execution.ProcessResult) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[command] = result
	return r
}

// OnPrefix handles every command starting with prefix
func (r *Runner) OnPrefix(prefix string, fn func(command string) (execution.ProcessResult, error)) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefix = append(r.prefix, prefixHandler{prefix: prefix, fn: fn})
	return r
}

// Run implements execution.ProcessRunner
func (r *Runner) Run(_ context.Context, command string) (execution.ProcessResult, error) {
	r.mu.Lock()
	r.calls = append(r.calls, command)
	res, ok := r.results[command]
	handlers := r.prefix
	r.mu.Unlock()

	if ok {
		return res, nil
	}
	for _, h := range handlers {
		if strings.HasPrefix(command, h.prefix) {
			return h.fn(command)
		}
	}
	return execution.ProcessResult{ExitCode: 127, Stderr: "sh: 1: not found\n"}, nil
}

// Calls returns the command lines run so far
func (r *Runner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

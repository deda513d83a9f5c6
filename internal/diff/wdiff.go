package diff

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ppe2e/internal/domain"
	"ppe2e/internal/execution"
	"ppe2e/internal/parser"
)

// WordDiffer computes word diffs with "git diff --word-diff --no-index", which works on any
// two files outside of a repository.
type WordDiffer struct {
	proc   execution.ProcessRunner
	logger *zap.Logger
}

// NewWordDiffer creates a new WordDiffer
func NewWordDiffer(proc execution.ProcessRunner, logger *zap.Logger) *WordDiffer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WordDiffer{proc: proc, logger: logger}
}

// Diff returns the word diff that turns the content of from into the content of to, along
// with the number of inserted and deleted words. Any output on stderr is an error; git's
// exit status is not, since it is 1 whenever the files differ.
func (d *WordDiffer) Diff(ctx context.Context, from, to string) (domain.DiffResult, error) {
	cmd := fmt.Sprintf("git --no-pager diff --word-diff --no-index %q %q", from, to)

	res, err := d.run(ctx, cmd)
	if err != nil {
		return domain.DiffResult{}, err
	}
	result := domain.DiffResult{Text: res.Stdout}

	res, err = d.run(ctx, cmd+" --numstat")
	if err != nil {
		return domain.DiffResult{}, err
	}
	result.Inserts, result.Deletes, err = parser.ParseNumstat(res.Stdout)
	if err != nil {
		return domain.DiffResult{}, err
	}

	d.logger.Debug("word diff computed",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("inserts", result.Inserts),
		zap.Int("deletes", result.Deletes),
	)
	return result, nil
}

func (d *WordDiffer) run(ctx context.Context, cmd string) (execution.ProcessResult, error) {
	res, err := d.proc.Run(ctx, cmd)
	if err != nil {
		return res, fmt.Errorf("diff: %w", err)
	}
	if res.Stderr != "" {
		return res, fmt.Errorf("diff: %s (%d)", res.TrimmedStderr(), res.ExitCode)
	}
	return res, nil
}

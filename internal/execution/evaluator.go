package execution

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"ppe2e/internal/domain"
	"ppe2e/internal/storage"
)

// Differ computes the word diff between two files
type Differ interface {
	Diff(ctx context.Context, from, to string) (domain.DiffResult, error)
}

// Evaluator runs a single test case and records its outputs
type Evaluator struct {
	proc   ProcessRunner
	differ Differ
	store  storage.Storage
	logger *zap.Logger
}

// NewEvaluator creates a new Evaluator
func NewEvaluator(proc ProcessRunner, differ Differ, store storage.Storage, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{proc: proc, differ: differ, store: store, logger: logger}
}

// Evaluate runs the case's command, writes its stdout to the actual output file, diffs it
// against the expected output and writes the diff and report files. It returns the number
// of words to insert into and delete from the actual output to get the expected output.
//
// A command that exits non-zero or writes to stderr is an error, and nothing is written.
func (e *Evaluator) Evaluate(ctx context.Context, run domain.RunContext, tc *domain.TestCase) (int, int, error) {
	e.logger.Debug("evaluating case",
		zap.String("command", tc.Command),
		zap.String("expected", tc.ExpectedOutputPath),
		zap.String("actual", tc.ActualOutputPath),
		zap.String("report", tc.ReportPath),
	)

	res, err := e.proc.Run(ctx, tc.Command)
	if err != nil {
		return 0, 0, fmt.Errorf("error on running %q: %w", tc.ShortCommand, err)
	}
	if res.ExitCode != 0 || res.Stderr != "" {
		return 0, 0, fmt.Errorf("error on running %q: %s (%d)", tc.ShortCommand, res.TrimmedStderr(), res.ExitCode)
	}

	if err := e.store.WriteText(tc.ActualOutputPath, res.Stdout); err != nil {
		return 0, 0, err
	}

	d, err := e.differ.Diff(ctx, tc.ActualOutputPath, tc.ExpectedOutputPath)
	if err != nil {
		return 0, 0, err
	}
	tc.DiffText, tc.Inserts, tc.Deletes = d.Text, d.Inserts, d.Deletes

	if err := e.store.WriteText(tc.DiffPath, tc.DiffText); err != nil {
		return 0, 0, err
	}
	if err := e.store.SaveReport(tc.ReportPath, BuildReport(run, tc)); err != nil {
		return 0, 0, err
	}

	return tc.Inserts, tc.Deletes, nil
}

// BuildReport creates the report of an evaluated case. All paths are made absolute.
func BuildReport(run domain.RunContext, tc *domain.TestCase) *domain.Report {
	return &domain.Report{
		Cmd: domain.ReportCommand{
			Full:  tc.Command,
			Short: tc.ShortCommand,
		},
		OK: tc.OK(),
		Diff: domain.ReportDiff{
			NumInserts: tc.Inserts,
			NumDeletes: tc.Deletes,
		},
		Date:  run.LogDate(),
		RunID: run.ID,
		Paths: domain.ReportPaths{
			PDF:                absPath(tc.PDFPath),
			ActualOutputFile:   absPath(tc.ActualOutputPath),
			ExpectedOutputFile: absPath(tc.ExpectedOutputPath),
			DiffFile:           absPath(tc.DiffPath),
			ConfigFile:         absPath(run.ConfigPath),
		},
		PPP: domain.ReportExecutable{
			Executable:       absPath(run.Executable.Path),
			Version:          run.Executable.Version,
			ModificationDate: run.Executable.ModificationDate,
		},
	}
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

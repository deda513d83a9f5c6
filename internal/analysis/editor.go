package analysis

import (
	"context"
	"errors"
	"fmt"

	"ppe2e/internal/domain"
	"ppe2e/internal/execution"
)

// Editor opens the expected and actual output of a report side by side in a diff editor
type Editor struct {
	proc    execution.ProcessRunner
	command string
}

// NewEditor creates an Editor running command, e.g. "code"
func NewEditor(proc execution.ProcessRunner, command string) *Editor {
	return &Editor{proc: proc, command: command}
}

// OpenDiff runs "<command> --diff <expected> <actual>" for report
func (e *Editor) OpenDiff(ctx context.Context, report *domain.Report) error {
	if report == nil {
		return errors.New("no report given")
	}
	expected := report.Paths.ExpectedOutputFile
	if expected == "" {
		return errors.New("no expected output file path given")
	}
	actual := report.Paths.ActualOutputFile
	if actual == "" {
		return errors.New("no actual output file path given")
	}

	cmd := fmt.Sprintf("%s --diff %s %s", e.command, execution.ShellQuote(expected), execution.ShellQuote(actual))
	res, err := e.proc.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 || res.Stderr != "" {
		return fmt.Errorf("%s (%d)", res.TrimmedStderr(), res.ExitCode)
	}
	return nil
}

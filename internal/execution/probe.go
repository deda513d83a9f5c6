package execution

import (
	"context"
	"fmt"

	"ppe2e/internal/domain"
)

// ProbeExecutable collects the modification date and version of the executable under test.
// Both are stored in every report of the run.
func ProbeExecutable(ctx context.Context, proc ProcessRunner, path string) (domain.ExecutableInfo, error) {
	info := domain.ExecutableInfo{Path: path}

	modDate, err := probe(ctx, proc, fmt.Sprintf("stat -c '%%y' %s", ShellQuote(path)))
	if err != nil {
		return info, fmt.Errorf("could not get the last modification date of the executable: %w", err)
	}
	info.ModificationDate = modDate

	version, err := probe(ctx, proc, fmt.Sprintf("%s --version", path))
	if err != nil {
		return info, fmt.Errorf("could not get the version from the executable: %w", err)
	}
	info.Version = version

	return info, nil
}

func probe(ctx context.Context, proc ProcessRunner, command string) (string, error) {
	res, err := proc.Run(ctx, command)
	if err != nil {
		return "", err
	}
	out := res.TrimmedStdout()
	if res.ExitCode != 0 || out == "" {
		return "", fmt.Errorf("status: %d; stdout: %s; stderr: %s", res.ExitCode, out, res.TrimmedStderr())
	}
	return out, nil
}

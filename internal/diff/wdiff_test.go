package diff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppe2e/internal/execution"
	"ppe2e/internal/execution/exectest"
)

const wordDiffCmd = `git --no-pager diff --word-diff --no-index "/tmp/a.actual.txt" "/tmp/a.txt"`

func TestWordDiffer_Diff(t *testing.T) {
	proc := exectest.NewRunner().
		On(wordDiffCmd, execution.ProcessResult{ExitCode: 1, Stdout: "Hello [-wrld-]{+world+}\n"}).
		On(wordDiffCmd+" --numstat", execution.ProcessResult{ExitCode: 1, Stdout: "1\t1\t/tmp/a.actual.txt => /tmp/a.txt\n"})

	res, err := NewWordDiffer(proc, nil).Diff(context.Background(), "/tmp/a.actual.txt", "/tmp/a.txt")
	require.NoError(t, err)

	assert.Equal(t, "Hello [-wrld-]{+world+}\n", res.Text)
	assert.Equal(t, 1, res.Inserts)
	assert.Equal(t, 1, res.Deletes)
	assert.Equal(t, []string{wordDiffCmd, wordDiffCmd + " --numstat"}, proc.Calls())
}

func TestWordDiffer_Identical(t *testing.T) {
	proc := exectest.NewRunner().
		On(wordDiffCmd, execution.ProcessResult{}).
		On(wordDiffCmd+" --numstat", execution.ProcessResult{})

	res, err := NewWordDiffer(proc, nil).Diff(context.Background(), "/tmp/a.actual.txt", "/tmp/a.txt")
	require.NoError(t, err)
	assert.Empty(t, res.Text)
	assert.Zero(t, res.Inserts)
	assert.Zero(t, res.Deletes)
}

func TestWordDiffer_Stderr(t *testing.T) {
	proc := exectest.NewRunner().
		On(wordDiffCmd, execution.ProcessResult{ExitCode: 128, Stderr: "error: Could not access '/tmp/a.txt'\n"})

	_, err := NewWordDiffer(proc, nil).Diff(context.Background(), "/tmp/a.actual.txt", "/tmp/a.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not access")
	assert.Contains(t, err.Error(), "(128)")
}

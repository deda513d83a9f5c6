package execution_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"ppe2e/internal/execution"
	"ppe2e/internal/execution/exectest"
)

// corpus has ground truth for a, b and c in the "plain" test and none for "words"
const corpus = `
-- bin/pdftotext++ --
#!/bin/sh
-- e2e/config.yml --
paths:
  pdfs_dir: ../pdfs
  expected_output_file: ground-truth/{test_slug}/{pdf_stem}.txt
  actual_output_file: results/{e2e_run_date}/{test_slug}/{pdf_stem}.actual.txt
  diff_file: results/{e2e_run_date}/{test_slug}/{pdf_stem}.diff
  report_file: results/{e2e_run_date}/{test_slug}/{pdf_stem}.report
tests:
  - name: Plain text
    slug: plain
    ppp_args: "{pdf} -"
  - name: Words
    slug: words
    ppp_args: "--output-words {pdf} -"
-- pdfs/a.pdf --
%PDF-1.4
-- pdfs/b.pdf --
%PDF-1.4
-- pdfs/c.pdf --
%PDF-1.4
-- e2e/ground-truth/plain/a.txt --
Hello world
-- e2e/ground-truth/plain/b.txt --
Hello world
-- e2e/ground-truth/plain/c.txt --
Hello world
`

// extract writes a txtar archive below a fresh temp dir and returns the dir
func extract(t *testing.T, archive string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range txtar.Parse([]byte(archive)).Files {
		path := filepath.Join(root, f.Name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, f.Data, 0644))
	}
	return root
}

// fakeTools scripts the executable and git: a.pdf matches the ground truth, b.pdf has one
// wrong word and c.pdf makes the executable fail.
func fakeTools(exe string) *exectest.Runner {
	return exectest.NewRunner().
		On("stat -c '%y' '"+exe+"'", execution.ProcessResult{Stdout: "2024-04-30 09:00:00.000000000 +0200\n"}).
		On(exe+" --version", execution.ProcessResult{Stdout: "pdftotext++ 1.0\n"}).
		OnPrefix(exe+" ", func(cmd string) (execution.ProcessResult, error) {
			switch {
			case strings.Contains(cmd, "a.pdf"):
				return execution.ProcessResult{Stdout: "Hello world\n"}, nil
			case strings.Contains(cmd, "b.pdf"):
				return execution.ProcessResult{Stdout: "Hello wrld\n"}, nil
			}
			return execution.ProcessResult{ExitCode: 1, Stderr: "boom\n"}, nil
		}).
		OnPrefix("git --no-pager diff", func(cmd string) (execution.ProcessResult, error) {
			identical := strings.Contains(cmd, "a.actual.txt")
			switch {
			case identical:
				return execution.ProcessResult{}, nil
			case strings.HasSuffix(cmd, " --numstat"):
				return execution.ProcessResult{ExitCode: 1, Stdout: "1\t1\tb.actual.txt => b.txt\n"}, nil
			}
			return execution.ProcessResult{ExitCode: 1, Stdout: "Hello [-wrld-]{+world+}\n"}, nil
		})
}

func plainOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })
	return &bytes.Buffer{}
}

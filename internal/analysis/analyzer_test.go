package analysis

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"ppe2e/internal/domain"
	"ppe2e/internal/execution"
	"ppe2e/internal/execution/exectest"
	"ppe2e/internal/storage"
	"ppe2e/internal/ui"
)

const resultDir = `
-- plain/a.report --
cmd:
  full: /usr/bin/pdftotext++ /pdfs/a.pdf -
  short: pdftotext++ a.pdf -
ok: false
diff:
  num_inserts: 2
  num_deletes: 1
paths:
  expected_output_file: /gt/a.txt
  actual_output_file: /res/a.actual.txt
-- plain/b.report --
ok: true
diff:
  num_inserts: 0
  num_deletes: 0
-- words/c.report --
ok: false
diff:
  num_inserts: 5
  num_deletes: 2
paths:
  expected_output_file: /gt/c.txt
  actual_output_file: /res/c.actual.txt
-- broken/empty.report --
-- broken/nook.report --
diff:
  num_inserts: 1
-- broken/text.report --
just some words
-- notes.txt --
ok: false
`

type fakeViewer struct {
	reports []domain.AnalyzedReport
}

func (v *fakeViewer) View(reports []domain.AnalyzedReport, open func(*domain.Report) error) error {
	v.reports = reports
	return nil
}

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

func newTestAnalyzer(t *testing.T, proc execution.ProcessRunner, viewer ui.Viewer) (*Analyzer, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var buf bytes.Buffer
	a := NewAnalyzer(storage.NewFileStorage(), NewEditor(proc, "code"), viewer, ui.NewFormatter(&buf), nil)
	a.progressOut = &buf
	return a, &buf
}

func TestAnalyzer_Run_FailingOnly(t *testing.T) {
	dir := extract(t, resultDir)
	a, buf := newTestAnalyzer(t, exectest.NewRunner(), nil)

	stats, err := a.Run(context.Background(), Options{Dir: dir, Mask: "*.report"})
	require.NoError(t, err)

	assert.Equal(t, domain.DiffStats{
		Count:      2,
		SumInserts: 7, MinInserts: 2, MaxInserts: 5,
		SumDeletes: 3, MinDeletes: 1, MaxDeletes: 2,
	}, stats)

	out := buf.String()
	for _, want := range []string{
		"• ignoring 'broken/empty.report' (is empty)",
		"• ignoring 'broken/nook.report' (doesn't contain 'ok' entry)",
		"• ignoring 'broken/text.report' (not in YAML format)",
		"• Number of found reports: 2",
		"[1/2] Analyzing report 'plain/a.report'...",
		"• #inserts: 2; #deletes: 1",
		"[2/2] Analyzing report 'words/c.report'...",
		"avg |    3.50 |    1.50 |",
		"total number of analyzed reports: 2",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "notes.txt")
}

func TestAnalyzer_Run_All(t *testing.T) {
	dir := extract(t, resultDir)
	a, buf := newTestAnalyzer(t, exectest.NewRunner(), nil)

	stats, err := a.Run(context.Background(), Options{Dir: dir, Mask: "*.report", All: true})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 7, stats.SumInserts)
	assert.Equal(t, 0, stats.MinInserts)
	assert.Equal(t, 5, stats.MaxInserts)
	assert.InDelta(t, 2.33, stats.AvgInserts(), 0.01)
	assert.Contains(t, buf.String(), "avg |    2.33 |    1.00 |")
	assert.Contains(t, buf.String(), "• statistics over:  all reports")
}

func TestAnalyzer_Run_VSCode(t *testing.T) {
	dir := extract(t, resultDir)
	proc := exectest.NewRunner().
		On("code --diff '/gt/a.txt' '/res/a.actual.txt'", execution.ProcessResult{})
	a, buf := newTestAnalyzer(t, proc, nil)

	_, err := a.Run(context.Background(), Options{Dir: dir, Mask: "*.report", VSCode: true, All: true})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"code --diff '/gt/a.txt' '/res/a.actual.txt'",
		"code --diff '/gt/c.txt' '/res/c.actual.txt'",
	}, proc.Calls())
	assert.Contains(t, buf.String(), "• analyzing in VS code failed: 'sh: 1: not found (127)'")
}

func TestAnalyzer_Run_TUI(t *testing.T) {
	dir := extract(t, resultDir)
	viewer := &fakeViewer{}
	a, _ := newTestAnalyzer(t, exectest.NewRunner(), viewer)

	_, err := a.Run(context.Background(), Options{Dir: dir, Mask: "*.report", TUI: true})
	require.NoError(t, err)

	require.Len(t, viewer.reports, 2)
	assert.Equal(t, "plain/a.report", viewer.reports[0].RelPath)
	assert.Equal(t, filepath.Join(dir, "words/c.report"), viewer.reports[1].Path)
}

func TestAnalyzer_Run_EmptyDir(t *testing.T) {
	a, buf := newTestAnalyzer(t, exectest.NewRunner(), nil)

	stats, err := a.Run(context.Background(), Options{Dir: t.TempDir(), Mask: "*.report"})
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
	assert.NotContains(t, buf.String(), "sum |")
	assert.Contains(t, buf.String(), "total number of analyzed reports: 0")
}

func TestAnalyzer_Run_Invalid(t *testing.T) {
	a, _ := newTestAnalyzer(t, exectest.NewRunner(), nil)
	file := filepath.Join(t.TempDir(), "x.report")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := a.Run(context.Background(), Options{Mask: "*.report"})
	assert.EqualError(t, err, "no path to a directory to scan given")

	_, err = a.Run(context.Background(), Options{Dir: file, Mask: "*.report"})
	assert.EqualError(t, err, "the path '"+file+"' is not a directory")

	_, err = a.Run(context.Background(), Options{Dir: filepath.Dir(file)})
	assert.EqualError(t, err, "no file name mask to match the report files given")

	_, err = a.Run(context.Background(), Options{Dir: filepath.Dir(file), Mask: "[report"})
	assert.ErrorContains(t, err, "could not detect reports")
}

func TestAggregate(t *testing.T) {
	reports := []domain.AnalyzedReport{
		{Report: &domain.Report{Diff: domain.ReportDiff{NumInserts: 2}}},
		{Report: &domain.Report{Diff: domain.ReportDiff{NumInserts: 0}}},
		{Report: &domain.Report{Diff: domain.ReportDiff{NumInserts: 5}}},
	}

	stats := Aggregate(reports)
	assert.Equal(t, 7, stats.SumInserts)
	assert.Equal(t, 0, stats.MinInserts)
	assert.Equal(t, 5, stats.MaxInserts)
	assert.Equal(t, "2.33", fmt.Sprintf("%.2f", stats.AvgInserts()))

	empty := Aggregate(nil)
	assert.Zero(t, empty.Count)
	assert.Zero(t, empty.AvgInserts())
}

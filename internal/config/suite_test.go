package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppe2e/internal/domain"
)

const validSuite = `paths:
  pdfs_dir: pdfs
  expected_output_file: ground-truth/{test_slug}/{pdf_stem}.txt
  actual_output_file: results/{e2e_run_date}/{test_slug}/{pdf_stem}.actual.txt
  diff_file: results/{e2e_run_date}/{test_slug}/{pdf_stem}.diff
  report_file: /var/e2e/{e2e_run_date}/{test_slug}/{pdf_stem}.report
tests:
  - name: Plain text
    slug: plain
    ppp_args: "{pdf} -"
  - name: Words
    slug: words
    ppp_args: "--output-words {pdf} -"
`

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSuite(t *testing.T) {
	path := writeSuite(t, validSuite)
	dir := filepath.Dir(path)

	suite, err := LoadSuite(path)
	require.NoError(t, err)

	want := &domain.Suite{
		PDFsDir: filepath.Join(dir, "pdfs"),
		Tests: []domain.TestDefinition{
			{
				Name:                  "Plain text",
				Slug:                  "plain",
				ArgsPattern:           "{pdf} -",
				ExpectedOutputPattern: filepath.Join(dir, "ground-truth/{test_slug}/{pdf_stem}.txt"),
				ActualOutputPattern:   filepath.Join(dir, "results/{e2e_run_date}/{test_slug}/{pdf_stem}.actual.txt"),
				DiffPattern:           filepath.Join(dir, "results/{e2e_run_date}/{test_slug}/{pdf_stem}.diff"),
				ReportPattern:         "/var/e2e/{e2e_run_date}/{test_slug}/{pdf_stem}.report",
			},
			{
				Name:                  "Words",
				Slug:                  "words",
				ArgsPattern:           "--output-words {pdf} -",
				ExpectedOutputPattern: filepath.Join(dir, "ground-truth/{test_slug}/{pdf_stem}.txt"),
				ActualOutputPattern:   filepath.Join(dir, "results/{e2e_run_date}/{test_slug}/{pdf_stem}.actual.txt"),
				DiffPattern:           filepath.Join(dir, "results/{e2e_run_date}/{test_slug}/{pdf_stem}.diff"),
				ReportPattern:         "/var/e2e/{e2e_run_date}/{test_slug}/{pdf_stem}.report",
			},
		},
	}
	if diff := cmp.Diff(want, suite); diff != "" {
		t.Errorf("LoadSuite() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSuite_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "not yaml",
			content: "paths: [unclosed",
			wantErr: "parse config file",
		},
		{
			name:    "missing paths",
			content: "tests: []\n",
			wantErr: `missing key "paths"`,
		},
		{
			name: "missing report pattern",
			content: `paths:
  pdfs_dir: pdfs
  expected_output_file: a
  actual_output_file: b
  diff_file: c
tests: []
`,
			wantErr: `missing key "paths.report_file"`,
		},
		{
			name: "missing tests",
			content: `paths:
  pdfs_dir: pdfs
  expected_output_file: a
  actual_output_file: b
  diff_file: c
  report_file: d
`,
			wantErr: `missing key "tests"`,
		},
		{
			name: "test without slug",
			content: `paths:
  pdfs_dir: pdfs
  expected_output_file: a
  actual_output_file: b
  diff_file: c
  report_file: d
tests:
  - name: First
    ppp_args: "{pdf}"
`,
			wantErr: `missing key "tests[0].slug"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSuite(writeSuite(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSuite(filepath.Join(t.TempDir(), "nope.yml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

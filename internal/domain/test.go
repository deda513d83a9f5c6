package domain

// Suite is the parsed test configuration file
type Suite struct {
	PDFsDir string           // Directory holding the PDF corpus (absolute)
	Tests   []TestDefinition // Tests in config order
}

// TestDefinition describes how to invoke the target executable for one named test and where
// the golden, actual, diff and report files of its cases live.
//
// ArgsPattern may contain {pdf}. The path patterns may contain {test_slug} and {pdf_stem};
// all but ExpectedOutputPattern may also contain {e2e_run_date}.
type TestDefinition struct {
	Name                  string
	Slug                  string
	ArgsPattern           string
	ExpectedOutputPattern string
	ActualOutputPattern   string
	DiffPattern           string
	ReportPattern         string
}

// TestCase is one test definition resolved against one PDF file
type TestCase struct {
	PDFPath            string
	ExpectedOutputPath string
	ActualOutputPath   string
	DiffPath           string
	ReportPath         string

	Command      string // Full command with absolute executable and PDF paths
	ShortCommand string // Command with file names only, for progress output

	DiffText string
	Inserts  int
	Deletes  int
}

// OK reports whether the actual output matched the expected output
func (c *TestCase) OK() bool {
	return c.Inserts == 0 && c.Deletes == 0
}

// DiffResult is the word diff between an actual and an expected output file
type DiffResult struct {
	Text    string
	Inserts int
	Deletes int
}

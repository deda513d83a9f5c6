package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ppe2e/internal/domain"
)

const lineWidth = 100

// Formatter prints the styled console output of the run and analyze commands
type Formatter struct {
	out io.Writer

	title     *color.Color
	preamble  *color.Color
	heading   *color.Color
	separator *color.Color
	summary   *color.Color
	success   *color.Color
	warn      *color.Color
	err       *color.Color
	exception *color.Color
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{
		out:       out,
		title:     color.New(color.FgBlue, color.Bold),
		preamble:  color.New(color.FgBlue),
		heading:   color.New(color.FgBlue, color.Bold),
		separator: color.New(color.FgBlue),
		summary:   color.New(color.FgBlue),
		success:   color.New(color.FgGreen),
		warn:      color.New(color.FgYellow),
		err:       color.New(color.FgRed),
		exception: color.New(color.FgMagenta),
	}
}

// Writer returns the writer the formatter prints to
func (f *Formatter) Writer() io.Writer {
	return f.out
}

func (f *Formatter) Title(s string)   { f.title.Fprintln(f.out, s) }
func (f *Formatter) Heading(s string) { f.heading.Fprintln(f.out, s) }
func (f *Formatter) Warn(s string)    { f.warn.Fprintln(f.out, s) }
func (f *Formatter) Error(s string)   { f.err.Fprintln(f.out, s) }
func (f *Formatter) Line(s string)    { fmt.Fprintln(f.out, s) }

// Separator prints a full-width double line
func (f *Formatter) Separator() {
	f.separator.Fprintln(f.out, strings.Repeat("=", lineWidth))
}

// ThinSeparator prints a full-width single line
func (f *Formatter) ThinSeparator() {
	f.separator.Fprintln(f.out, strings.Repeat("-", lineWidth))
}

// PrintRunPreamble prints the header of a run
func (f *Formatter) PrintRunPreamble(run domain.RunContext) {
	f.Title("Running E2E tests")
	f.Separator()
	f.preamble.Fprintf(f.out, "• start date:          %s\n", run.LogDate())
	f.preamble.Fprintf(f.out, "• run id:              %s\n", run.ID)
	f.preamble.Fprintf(f.out, "• config file path:    %s\n", run.ConfigPath)
	f.preamble.Fprintf(f.out, "• pdftotext++ path:    %s\n", run.Executable.Path)
	f.preamble.Fprintf(f.out, "• pdftotext++ date:    %s\n", run.Executable.ModificationDate)
	f.preamble.Fprintf(f.out, "• pdftotext++ version: %s\n", run.Executable.Version)
	f.Separator()
}

// PrintCaseStart prints the head of a case line without a newline. One of the PrintCase
// results overwrites it once the case is evaluated.
func (f *Formatter) PrintCaseStart(head string) {
	fmt.Fprint(f.out, head)
}

func (f *Formatter) PrintCaseOK(head string) {
	f.success.Fprintf(f.out, "\r%s[OK]\n", head)
}

func (f *Formatter) PrintCaseFailed(head string, inserts, deletes int) {
	f.err.Fprintf(f.out, "\r%s[FAILED] %d inserts, %d deletes\n", head, inserts, deletes)
}

func (f *Formatter) PrintCaseException(head string, err error) {
	f.exception.Fprintf(f.out, "\r%s[EXCEPTION] %v\n", head, err)
}

// PrintRunSummary prints the counters of a finished run
func (f *Formatter) PrintRunSummary(s *domain.RunSummary) {
	f.Separator()
	f.summary.Fprintf(f.out, "number of test cases: %d (skipped tests: %d; exceptions: %d; passed: %d; failures: %d)\n",
		s.Cases, s.SkippedTests, s.Exceptions, s.Passed, s.Failures)
	fmt.Fprintln(f.out)
}

// PrintTestList prints the cases of one test without running them
func (f *Formatter) PrintTestList(i, n int, test domain.TestDefinition, cases []domain.TestCase, err error) {
	f.Heading(fmt.Sprintf("[%d/%d] Test '%s' (%s)", i, n, test.Name, test.Slug))
	switch {
	case err != nil:
		f.Warn(fmt.Sprintf("• error on detecting test cases: %v", err))
	case len(cases) == 0:
		f.Warn("• no test cases detected")
	default:
		for j, c := range cases {
			fmt.Fprintf(f.out, " • case %d: %s\n", j+1, c.ShortCommand)
		}
	}
}

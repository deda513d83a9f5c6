package ui

import (
	"fmt"

	"ppe2e/internal/domain"
)

// PrintAnalyzePreamble prints the header of an analysis
func (f *Formatter) PrintAnalyzePreamble(dir, mask string, vscode, all bool) {
	policy := "failing reports only"
	if all {
		policy = "all reports"
	}

	f.Title("Analyzing E2E test reports")
	f.Separator()
	f.preamble.Fprintf(f.out, "• directory path:   %s\n", dir)
	f.preamble.Fprintf(f.out, "• report file mask: %s\n", mask)
	f.preamble.Fprintf(f.out, "• VS code mode:     %t\n", vscode)
	f.preamble.Fprintf(f.out, "• statistics over:  %s\n", policy)
	f.Separator()
}

// PrintSkippedReport warns about a report file that is not analyzed
func (f *Formatter) PrintSkippedReport(rel string, reason string) {
	f.Warn(fmt.Sprintf("• ignoring '%s' (%s)", rel, reason))
}

// PrintReport prints the counts of one analyzed report
func (f *Formatter) PrintReport(i, n int, rel string, report *domain.Report) {
	f.Heading(fmt.Sprintf("[%d/%d] Analyzing report '%s'...", i, n, rel))
	f.Line(fmt.Sprintf("• #inserts: %d; #deletes: %d", report.Diff.NumInserts, report.Diff.NumDeletes))
}

// PrintStatistics prints the aggregate table. An empty set prints only the count.
func (f *Formatter) PrintStatistics(s domain.DiffStats) {
	f.Separator()
	if s.Count > 0 {
		f.summary.Fprintln(f.out, "    | inserts | deletes |")
		f.summary.Fprintln(f.out, "----+---------+---------+")
		f.summary.Fprintf(f.out, "sum | %7d | %7d |\n", s.SumInserts, s.SumDeletes)
		f.summary.Fprintf(f.out, "min | %7d | %7d |\n", s.MinInserts, s.MinDeletes)
		f.summary.Fprintf(f.out, "max | %7d | %7d |\n", s.MaxInserts, s.MaxDeletes)
		f.summary.Fprintf(f.out, "avg | %7.2f | %7.2f |\n", s.AvgInserts(), s.AvgDeletes())
		fmt.Fprintln(f.out)
	}
	f.summary.Fprintf(f.out, "total number of analyzed reports: %d\n", s.Count)
	fmt.Fprintln(f.out)
}

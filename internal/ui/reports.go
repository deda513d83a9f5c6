package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ppe2e/internal/domain"
)

// ReportViewer displays analyzed reports in an interactive TUI
type ReportViewer struct {
	readFile func(string) ([]byte, error)
}

// NewReportViewer creates a new ReportViewer
func NewReportViewer() *ReportViewer {
	return &ReportViewer{readFile: os.ReadFile}
}

// View lists the reports on the left and shows the selected report with its diff on the right
func (rv *ReportViewer) View(reports []domain.AnalyzedReport, open func(*domain.Report) error) error {
	if len(reports) == 0 {
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, r := range reports {
		list.AddItem(listItemText(i, r), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	metaView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	diffView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(metaView, 8, 0, false).
		AddItem(diffView, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	statusView := tview.NewTextView().
		SetDynamicColors(true)

	setHeader := func() {
		failing := 0
		for _, r := range reports {
			if !r.Report.OK {
				failing++
			}
		}
		headerView.SetText(fmt.Sprintf(" Reports (%d total, %d failing) | ↑↓ navigate, → diff, [yellow]o[white] open in editor, Ctrl+C exit ", len(reports), failing))
	}

	showSelected := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(reports) {
			return
		}
		r := reports[index]
		metaView.SetText(formatReportMeta(r))
		diffView.SetText(rv.formatDiff(r.Report)).ScrollToBeginning()
	}

	list.SetChangedFunc(func(int, string, string, rune) {
		statusView.SetText("")
		showSelected()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(diffView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'o' || event.Rune() == 'O' {
				index := list.GetCurrentItem()
				if open == nil || index < 0 || index >= len(reports) {
					return nil
				}
				if err := open(reports[index].Report); err != nil {
					statusView.SetText(fmt.Sprintf("[red]opening editor failed: %s", tview.Escape(err.Error())))
				} else {
					statusView.SetText("[green]opened in editor")
				}
				return nil
			}
		}
		return event
	})

	diffView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	setHeader()
	showSelected()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(statusView, 1, 0, false)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func listItemText(i int, r domain.AnalyzedReport) string {
	mark := "[green]✓"
	if !r.Report.OK {
		mark = "[red]✗"
	}
	return fmt.Sprintf("%s [yellow]%d.[white] %s", mark, i+1, tview.Escape(r.RelPath))
}

// formatReportMeta formats the report header using tview color tags
func formatReportMeta(r domain.AnalyzedReport) string {
	rep := r.Report
	var b strings.Builder
	fmt.Fprintf(&b, "[cyan]report:[white]   %s\n", tview.Escape(r.Path))
	fmt.Fprintf(&b, "[cyan]command:[white]  %s\n", tview.Escape(rep.Cmd.Full))
	fmt.Fprintf(&b, "[cyan]diff:[white]     %d inserts, %d deletes\n", rep.Diff.NumInserts, rep.Diff.NumDeletes)
	fmt.Fprintf(&b, "[cyan]date:[white]     %s\n", tview.Escape(rep.Date))
	fmt.Fprintf(&b, "[cyan]expected:[white] %s\n", tview.Escape(rep.Paths.ExpectedOutputFile))
	fmt.Fprintf(&b, "[cyan]actual:[white]   %s\n", tview.Escape(rep.Paths.ActualOutputFile))
	fmt.Fprintf(&b, "[cyan]version:[white]  %s\n", tview.Escape(rep.PPP.Version))
	return b.String()
}

func (rv *ReportViewer) formatDiff(rep *domain.Report) string {
	if rep.Paths.DiffFile == "" {
		return "[gray]no diff file recorded"
	}
	data, err := rv.readFile(rep.Paths.DiffFile)
	if err != nil {
		return fmt.Sprintf("[red]could not read diff file: %s", tview.Escape(err.Error()))
	}
	if len(data) == 0 {
		return "[green]no differences"
	}
	return tview.Escape(string(data))
}

package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ScanProgress shows a spinner with a counter while report files are scanned.
// It renders only when its writer is a terminal; otherwise every method is a no-op.
type ScanProgress struct {
	bar *progressbar.ProgressBar
}

// NewScanProgress creates a spinner writing to w
func NewScanProgress(w io.Writer, description string) *ScanProgress {
	if !isTerminal(w) {
		return &ScanProgress{}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &ScanProgress{bar: bar}
}

// Add counts one scanned file
func (p *ScanProgress) Add() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

// Finish clears the spinner
func (p *ScanProgress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

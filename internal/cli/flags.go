package cli

import (
	"fmt"
	"path/filepath"

	"ppe2e/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	LogLevel string

	PPPPath     string
	ConfigPath  string
	TestFilter  string
	PDFFilter   string
	MetricsFile string

	ReportDir   string
	ReportMask  string
	ResultsRoot string
	VSCode      bool
	All         bool
	TUI         bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		PPPPath:     f.PPPPath,
		ConfigPath:  f.ConfigPath,
		TestFilter:  f.TestFilter,
		PDFFilter:   f.PDFFilter,
		MetricsFile: f.MetricsFile,
		ReportDir:   f.ReportDir,
		ReportMask:  f.ReportMask,
		ResultsRoot: f.ResultsRoot,
		VSCode:      f.VSCode,
		All:         f.All,
		TUI:         f.TUI,
	}
}

// ValidatePaths checks that the executable and config paths, when given, are absolute
func (f *Flags) ValidatePaths() error {
	for _, p := range []string{f.PPPPath, f.ConfigPath} {
		if p != "" && !filepath.IsAbs(p) {
			return fmt.Errorf("path '%s' must be absolute", p)
		}
	}
	return nil
}

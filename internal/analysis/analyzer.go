package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"

	"ppe2e/internal/domain"
	"ppe2e/internal/storage"
	"ppe2e/internal/ui"
)

// Options controls one analysis
type Options struct {
	Dir  string
	Mask string

	VSCode bool // Open the editor diff for every failing report
	All    bool // Include passing reports in the statistics
	TUI    bool // Browse the reports interactively afterwards
}

// Skipped is a report file left out of the analysis
type Skipped struct {
	RelPath string
	Reason  string
}

// Analyzer aggregates the reports of a results directory
type Analyzer struct {
	store       storage.Storage
	editor      *Editor
	viewer      ui.Viewer
	formatter   *ui.Formatter
	progressOut io.Writer
	logger      *zap.Logger
}

// NewAnalyzer creates a new Analyzer. viewer may be nil when no TUI is available.
func NewAnalyzer(store storage.Storage, editor *Editor, viewer ui.Viewer, formatter *ui.Formatter, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		store:       store,
		editor:      editor,
		viewer:      viewer,
		formatter:   formatter,
		progressOut: os.Stderr,
		logger:      logger,
	}
}

// Run detects the reports below opts.Dir, prints each retained report and the aggregate
// statistics, and returns the statistics.
func (a *Analyzer) Run(ctx context.Context, opts Options) (domain.DiffStats, error) {
	if opts.Dir == "" {
		return domain.DiffStats{}, errors.New("no path to a directory to scan given")
	}
	if info, err := os.Stat(opts.Dir); err != nil || !info.IsDir() {
		return domain.DiffStats{}, fmt.Errorf("the path '%s' is not a directory", opts.Dir)
	}
	if opts.Mask == "" {
		return domain.DiffStats{}, errors.New("no file name mask to match the report files given")
	}
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return domain.DiffStats{}, fmt.Errorf("resolve directory: %w", err)
	}

	a.formatter.PrintAnalyzePreamble(dir, opts.Mask, opts.VSCode, opts.All)
	a.formatter.Heading("Detecting report files ... ")

	reports, skipped, err := a.Detect(dir, opts.Mask, opts.All)
	if err != nil {
		return domain.DiffStats{}, fmt.Errorf("could not detect reports: %w", err)
	}
	for _, s := range skipped {
		a.formatter.PrintSkippedReport(s.RelPath, s.Reason)
		a.logger.Warn("report ignored", zap.String("report", s.RelPath), zap.String("reason", s.Reason))
	}
	a.formatter.Line(fmt.Sprintf("• Number of found reports: %d", reports.Len()))

	list := make([]domain.AnalyzedReport, 0, reports.Len())
	for pair := reports.Oldest(); pair != nil; pair = pair.Next() {
		list = append(list, pair.Value)
	}

	if len(list) > 0 {
		a.formatter.Separator()
	}
	for i, r := range list {
		a.formatter.PrintReport(i+1, len(list), r.RelPath, r.Report)
		if opts.VSCode && !r.Report.OK {
			if err := a.editor.OpenDiff(ctx, r.Report); err != nil {
				a.formatter.Warn(fmt.Sprintf("• analyzing in VS code failed: '%v'", err))
				a.logger.Warn("editor failed", zap.String("report", r.Path), zap.Error(err))
			}
		}
	}

	stats := Aggregate(list)
	a.formatter.PrintStatistics(stats)

	if opts.TUI && a.viewer != nil && len(list) > 0 {
		open := func(r *domain.Report) error { return a.editor.OpenDiff(ctx, r) }
		if err := a.viewer.View(list, open); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// Detect walks dir recursively and loads every file whose name matches mask. Unusable files
// are returned as skipped. Unless all is set, passing reports are dropped. The returned map
// is keyed by absolute path and keeps walk order.
func (a *Analyzer) Detect(dir, mask string, all bool) (*orderedmap.OrderedMap[string, domain.AnalyzedReport], []Skipped, error) {
	if _, err := filepath.Match(mask, ""); err != nil {
		return nil, nil, fmt.Errorf("invalid mask %q: %w", mask, err)
	}

	progress := ui.NewScanProgress(a.progressOut, "Scanning report files")
	defer progress.Finish()

	reports := orderedmap.New[string, domain.AnalyzedReport]()
	var skipped []Skipped

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if matched, _ := filepath.Match(mask, d.Name()); !matched {
			return nil
		}
		progress.Add()

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}

		report, err := a.store.LoadReport(path)
		if err != nil {
			skipped = append(skipped, Skipped{RelPath: rel, Reason: firstLine(err.Error())})
			return nil
		}
		if !all && report.OK {
			return nil
		}

		reports.Set(path, domain.AnalyzedReport{Path: path, RelPath: rel, Report: report})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return reports, skipped, nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

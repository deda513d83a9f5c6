package ui

import "ppe2e/internal/domain"

// Viewer browses analyzed reports interactively. open is called for the selected report when
// the user asks for the editor diff.
type Viewer interface {
	View(reports []domain.AnalyzedReport, open func(*domain.Report) error) error
}

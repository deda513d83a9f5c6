package analysis

import "ppe2e/internal/domain"

// Aggregate computes sum, min, max and average of the diff counts of reports
func Aggregate(reports []domain.AnalyzedReport) domain.DiffStats {
	var stats domain.DiffStats
	for _, r := range reports {
		stats.Add(r.Report.Diff.NumInserts, r.Report.Diff.NumDeletes)
	}
	return stats
}

package domain

// Report is the record written for every evaluated test case and read back by the analyzer
type Report struct {
	Cmd   ReportCommand    `yaml:"cmd"`
	OK    bool             `yaml:"ok"`
	Diff  ReportDiff       `yaml:"diff"`
	Date  string           `yaml:"date"`
	RunID string           `yaml:"run_id,omitempty"`
	Paths ReportPaths      `yaml:"paths"`
	PPP   ReportExecutable `yaml:"ppp"`
}

type ReportCommand struct {
	Full  string `yaml:"full"`
	Short string `yaml:"short"`
}

type ReportDiff struct {
	NumInserts int `yaml:"num_inserts"`
	NumDeletes int `yaml:"num_deletes"`
}

type ReportPaths struct {
	PDF                string `yaml:"pdf"`
	ActualOutputFile   string `yaml:"actual_output_file"`
	ExpectedOutputFile string `yaml:"expected_output_file"`
	DiffFile           string `yaml:"diff_file"`
	ConfigFile         string `yaml:"config_file"`
}

type ReportExecutable struct {
	Executable       string `yaml:"executable"`
	Version          string `yaml:"version"`
	ModificationDate string `yaml:"modification_date"`
}

// AnalyzedReport is a report file picked up by the analyzer
type AnalyzedReport struct {
	Path    string // Absolute path of the report file
	RelPath string // Path relative to the analyzed directory
	Report  *Report
}

// DiffStats aggregates the diff counts of a set of reports
type DiffStats struct {
	Count      int
	SumInserts int
	MinInserts int
	MaxInserts int
	SumDeletes int
	MinDeletes int
	MaxDeletes int
}

// Add folds one report's counts into the statistics
func (s *DiffStats) Add(inserts, deletes int) {
	if s.Count == 0 || inserts < s.MinInserts {
		s.MinInserts = inserts
	}
	if s.Count == 0 || deletes < s.MinDeletes {
		s.MinDeletes = deletes
	}
	if inserts > s.MaxInserts {
		s.MaxInserts = inserts
	}
	if deletes > s.MaxDeletes {
		s.MaxDeletes = deletes
	}
	s.SumInserts += inserts
	s.SumDeletes += deletes
	s.Count++
}

// AvgInserts returns the mean insert count, 0 for an empty set
func (s DiffStats) AvgInserts() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.SumInserts) / float64(s.Count)
}

// AvgDeletes returns the mean delete count, 0 for an empty set
func (s DiffStats) AvgDeletes() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.SumDeletes) / float64(s.Count)
}

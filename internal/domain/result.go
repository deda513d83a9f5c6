package domain

import "time"

// Date layouts used in console output, reports and file paths.
const (
	LogDateLayout      = "2006-01-02 15:04:05.000000"
	FileNameDateLayout = "2006-01-02_15-04-05"
)

// ExecutableInfo is what the runner probed about the target executable before the run
type ExecutableInfo struct {
	Path             string
	Version          string
	ModificationDate string
}

// RunContext holds the read-only metadata of one run. It is built once before the first test
// and passed to discovery, evaluation and report creation.
type RunContext struct {
	ID         string
	StartedAt  time.Time
	ConfigPath string
	Executable ExecutableInfo
}

// FileNameDate returns the run start time as used for {e2e_run_date}
func (r RunContext) FileNameDate() string {
	return r.StartedAt.Format(FileNameDateLayout)
}

// LogDate returns the run start time as printed and stored in reports
func (r RunContext) LogDate() string {
	return r.StartedAt.Format(LogDateLayout)
}

// Outcome is the result category of one evaluated test case
type Outcome string

const (
	OutcomePassed    Outcome = "passed"
	OutcomeFailure   Outcome = "failure"
	OutcomeException Outcome = "exception"
)

// RunSummary holds the counters printed after a run
type RunSummary struct {
	Cases        int `json:"cases"`
	SkippedTests int `json:"skipped_tests"`
	Exceptions   int `json:"exceptions"`
	Passed       int `json:"passed"`
	Failures     int `json:"failures"`
}

// Record counts one case outcome
func (s *RunSummary) Record(outcome Outcome) {
	switch outcome {
	case OutcomePassed:
		s.Passed++
	case OutcomeFailure:
		s.Failures++
	case OutcomeException:
		s.Exceptions++
	}
}

package execution

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ppe2e/internal/config"
	"ppe2e/internal/discovery"
	"ppe2e/internal/domain"
	"ppe2e/internal/metrics"
	"ppe2e/internal/ui"
)

// RunOptions selects the executable, suite and subset of a run
type RunOptions struct {
	PPPPath    string
	ConfigPath string
	TestFilter string
	PDFFilter  string
}

// Runner executes all tests of a suite against the executable, one case at a time
type Runner struct {
	proc       ProcessRunner
	discoverer *discovery.Discoverer
	evaluator  *Evaluator
	formatter  *ui.Formatter
	metrics    *metrics.Collector
	logger     *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewRunner creates a new Runner
func NewRunner(proc ProcessRunner, discoverer *discovery.Discoverer, evaluator *Evaluator, formatter *ui.Formatter, collector *metrics.Collector, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		proc:       proc,
		discoverer: discoverer,
		evaluator:  evaluator,
		formatter:  formatter,
		metrics:    collector,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Run validates the inputs, probes the executable and evaluates every case of every selected
// test. Errors returned abort the whole run; failing and crashing cases only show up in the
// summary.
func (r *Runner) Run(ctx context.Context, opts RunOptions) (*domain.RunSummary, error) {
	if err := checkFile(opts.PPPPath, "no path to the pdftotext++ executable given"); err != nil {
		return nil, err
	}
	if err := checkFile(opts.ConfigPath, "no path to a config file given"); err != nil {
		return nil, err
	}

	exe, err := ProbeExecutable(ctx, r.proc, opts.PPPPath)
	if err != nil {
		return nil, err
	}

	run := domain.RunContext{
		ID:         r.newID(),
		StartedAt:  r.now(),
		ConfigPath: absPath(opts.ConfigPath),
		Executable: exe,
	}
	r.logger.Info("run started",
		zap.String("run_id", run.ID),
		zap.String("executable", exe.Path),
		zap.String("version", exe.Version),
	)
	r.formatter.PrintRunPreamble(run)
	if r.metrics != nil {
		r.metrics.ObserveRun(run)
	}

	suite, err := config.LoadSuite(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("could not read the config file: %w", err)
	}
	if len(suite.Tests) == 0 {
		return nil, errors.New("no tests given")
	}

	tests := r.discoverer.SelectTests(suite.Tests, opts.TestFilter)
	summary := &domain.RunSummary{}
	for i, test := range tests {
		pre := fmt.Sprintf("[%d/%d] ", i+1, len(tests))
		r.runTest(ctx, run, suite, test, opts.PDFFilter, pre, summary)
		if i < len(tests)-1 {
			r.formatter.ThinSeparator()
		}
	}

	r.formatter.PrintRunSummary(summary)
	r.logger.Info("run finished",
		zap.String("run_id", run.ID),
		zap.Int("cases", summary.Cases),
		zap.Int("passed", summary.Passed),
		zap.Int("failures", summary.Failures),
		zap.Int("exceptions", summary.Exceptions),
		zap.Int("skipped_tests", summary.SkippedTests),
	)
	return summary, nil
}

func (r *Runner) runTest(ctx context.Context, run domain.RunContext, suite *domain.Suite, test domain.TestDefinition, pdfFilter, pre string, summary *domain.RunSummary) {
	cases, err := r.discoverer.Discover(run, suite, test, pdfFilter)
	if err != nil {
		r.skipTest(test, pre, "error on detecting test cases", summary)
		r.formatter.Line(fmt.Sprintf("error: %v", err))
		return
	}
	if len(cases) == 0 {
		r.skipTest(test, pre, "no test cases detected", summary)
		return
	}

	r.formatter.Heading(fmt.Sprintf("%sRunning test '%s'...", pre, test.Name))
	summary.Cases += len(cases)

	for j := range cases {
		tc := &cases[j]
		head := fmt.Sprintf(" • case %d: %s ", j+1, tc.ShortCommand)
		r.formatter.PrintCaseStart(head)

		start := time.Now()
		inserts, deletes, err := r.evaluator.Evaluate(ctx, run, tc)
		var outcome domain.Outcome
		switch {
		case err != nil:
			outcome = domain.OutcomeException
			r.formatter.PrintCaseException(head, err)
			r.logger.Debug("case raised", zap.String("command", tc.Command), zap.Error(err))
		case inserts > 0 || deletes > 0:
			outcome = domain.OutcomeFailure
			r.formatter.PrintCaseFailed(head, inserts, deletes)
		default:
			outcome = domain.OutcomePassed
			r.formatter.PrintCaseOK(head)
		}

		summary.Record(outcome)
		if r.metrics != nil {
			r.metrics.ObserveCase(test.Slug, outcome, inserts, deletes, time.Since(start))
		}
	}
}

func (r *Runner) skipTest(test domain.TestDefinition, pre, reason string, summary *domain.RunSummary) {
	summary.SkippedTests++
	r.formatter.Warn(fmt.Sprintf("%sSkipped test '%s' (%s)", pre, test.Name, reason))
	r.logger.Warn("test skipped", zap.String("test", test.Slug), zap.String("reason", reason))
	if r.metrics != nil {
		r.metrics.ObserveSkippedTest(test.Slug)
	}
}

func checkFile(path, missing string) error {
	if path == "" {
		return errors.New(missing)
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("the path '%s' is not a file", path)
	}
	return nil
}

package metrics

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"ppe2e/internal/domain"
)

// Collector captures metrics of one run
type Collector struct {
	registry     *prometheus.Registry
	casesTotal   *prometheus.CounterVec
	skippedTotal *prometheus.CounterVec
	caseDuration *prometheus.HistogramVec
	inserts      *prometheus.CounterVec
	deletes      *prometheus.CounterVec
	runInfo      *prometheus.GaugeVec
}

// NewCollector initializes a new metrics registry
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	collector := &Collector{
		registry: registry,
		casesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "ppe2e_cases_total", Help: "Evaluated test cases by outcome"},
			[]string{"test", "outcome"},
		),
		skippedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "ppe2e_skipped_tests_total", Help: "Tests skipped because no cases could be detected"},
			[]string{"test"},
		),
		caseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ppe2e_case_duration_seconds",
				Help:    "Test case duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"test", "outcome"},
		),
		inserts: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "ppe2e_diff_inserts_total", Help: "Words to insert into actual outputs to get the expected ones"},
			[]string{"test"},
		),
		deletes: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "ppe2e_diff_deletes_total", Help: "Words to delete from actual outputs to get the expected ones"},
			[]string{"test"},
		),
		runInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "ppe2e_run_info", Help: "Run metadata for traceability"},
			[]string{"run_id", "executable", "version"},
		),
	}

	registry.MustRegister(collector.casesTotal, collector.skippedTotal, collector.caseDuration,
		collector.inserts, collector.deletes, collector.runInfo)
	return collector
}

// ObserveRun records the metadata of the run
func (c *Collector) ObserveRun(run domain.RunContext) {
	c.runInfo.WithLabelValues(run.ID, run.Executable.Path, run.Executable.Version).Set(1)
}

// ObserveCase records one evaluated case
func (c *Collector) ObserveCase(test string, outcome domain.Outcome, inserts, deletes int, duration time.Duration) {
	c.casesTotal.WithLabelValues(test, string(outcome)).Inc()
	c.caseDuration.WithLabelValues(test, string(outcome)).Observe(duration.Seconds())
	if outcome != domain.OutcomeException {
		c.inserts.WithLabelValues(test).Add(float64(inserts))
		c.deletes.WithLabelValues(test).Add(float64(deletes))
	}
}

// ObserveSkippedTest records a skipped test
func (c *Collector) ObserveSkippedTest(test string) {
	c.skippedTotal.WithLabelValues(test).Inc()
}

// Write writes all metrics to a Prometheus text file
func (c *Collector) Write(path string) error {
	metricFamilies, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range metricFamilies {
		if err := enc.Encode(family); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ppe2e/internal/config"
	"ppe2e/internal/execution"
	"ppe2e/internal/metrics"
	"ppe2e/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	runner    *execution.Runner
	metrics   *metrics.Collector
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, runner *execution.Runner, collector *metrics.Collector, formatter *ui.Formatter) *RunCommand {
	return &RunCommand{
		config:    cfg,
		runner:    runner,
		metrics:   collector,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	_, err := rc.runner.Run(cmd.Context(), execution.RunOptions{
		PPPPath:    rc.config.GetPPPPath(),
		ConfigPath: rc.config.GetConfigPath(),
		TestFilter: rc.config.Flags.TestFilter,
		PDFFilter:  rc.config.Flags.PDFFilter,
	})
	if err != nil {
		return err
	}

	if path := rc.config.Flags.MetricsFile; path != "" {
		if err := rc.metrics.Write(path); err != nil {
			rc.formatter.Warn(fmt.Sprintf("could not write metrics file: %v", err))
		}
	}
	return nil
}

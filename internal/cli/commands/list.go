package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ppe2e/internal/config"
	"ppe2e/internal/discovery"
	"ppe2e/internal/domain"
	"ppe2e/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config     *config.Config
	discoverer *discovery.Discoverer
	formatter  *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, discoverer *discovery.Discoverer, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:     cfg,
		discoverer: discoverer,
		formatter:  formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	suite, err := config.LoadSuite(lc.config.GetConfigPath())
	if err != nil {
		return fmt.Errorf("could not read the config file: %w", err)
	}

	tests := lc.discoverer.SelectTests(suite.Tests, lc.config.Flags.TestFilter)
	if len(tests) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	run := domain.RunContext{
		StartedAt:  time.Now(),
		ConfigPath: lc.config.GetConfigPath(),
		Executable: domain.ExecutableInfo{Path: lc.config.GetPPPPath()},
	}
	for i, test := range tests {
		cases, err := lc.discoverer.Discover(run, suite, test, lc.config.Flags.PDFFilter)
		lc.formatter.PrintTestList(i+1, len(tests), test, cases, err)
	}
	return nil
}

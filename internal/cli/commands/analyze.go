package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ppe2e/internal/analysis"
	"ppe2e/internal/config"
)

// AnalyzeCommand handles the analyze command
type AnalyzeCommand struct {
	config   *config.Config
	analyzer *analysis.Analyzer
}

// NewAnalyzeCommand creates a new AnalyzeCommand
func NewAnalyzeCommand(cfg *config.Config, analyzer *analysis.Analyzer) *AnalyzeCommand {
	return &AnalyzeCommand{config: cfg, analyzer: analyzer}
}

// Execute runs the command
func (ac *AnalyzeCommand) Execute(cmd *cobra.Command, args []string) error {
	dir, err := resolveReportDir(ac.config)
	if err != nil {
		return err
	}

	_, err = ac.analyzer.Run(cmd.Context(), analysis.Options{
		Dir:    dir,
		Mask:   ac.config.GetReportMask(),
		VSCode: ac.config.Flags.VSCode,
		All:    ac.config.Flags.All,
		TUI:    ac.config.Flags.TUI,
	})
	return err
}

// resolveReportDir replaces the latest-result sentinel with the newest run directory
func resolveReportDir(cfg *config.Config) (string, error) {
	dir := cfg.GetReportDir()
	if dir != config.LatestResultDir {
		return dir, nil
	}
	latest, err := analysis.LatestResultDir(cfg.GetResultsRoot())
	if err != nil {
		return "", fmt.Errorf("error on detecting latest test result dir: %w", err)
	}
	return latest, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ppe2e/internal/cli"
	"ppe2e/internal/cli/commands"
	"ppe2e/internal/config"
	"ppe2e/internal/logging"
)

var version = "dev"

func main() {
	// Variables from .env act as defaults for the environment
	if err := config.LoadEnv(config.DefaultEnvFile); err != nil {
		color.Yellow("Warning: %v", err)
	}

	cfg := config.New()

	logger, level, err := logging.NewLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "ppe2e",
		Short:         "End-to-end tests for pdftotext++",
		Long:          `Runs pdftotext++ against a corpus of PDF files, compares the output with the expected ground truth word by word, and analyzes the resulting reports.`,
		Version:       version,
		SilenceErrors: true,
	}

	var flags cli.Flags
	cmds := commands.NewCommands(cfg, logger)
	cmds.Register(rootCmd, &flags, cfg, level)

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

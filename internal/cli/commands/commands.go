package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ppe2e/internal/analysis"
	"ppe2e/internal/cli"
	"ppe2e/internal/config"
	"ppe2e/internal/diff"
	"ppe2e/internal/discovery"
	"ppe2e/internal/execution"
	"ppe2e/internal/logging"
	"ppe2e/internal/metrics"
	"ppe2e/internal/storage"
	"ppe2e/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	Analyze *AnalyzeCommand
	List    *ListCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, logger *zap.Logger) *Commands {
	proc := execution.NewShellRunner(logger)
	fileStorage := storage.NewFileStorage()
	formatter := ui.NewFormatter(os.Stdout)
	discoverer := discovery.NewDiscoverer(discovery.NewScanner(), discovery.NewFilter())
	evaluator := execution.NewEvaluator(proc, diff.NewWordDiffer(proc, logger), fileStorage, logger)
	collector := metrics.NewCollector()
	runner := execution.NewRunner(proc, discoverer, evaluator, formatter, collector, logger)
	editor := analysis.NewEditor(proc, cfg.Editor)
	analyzer := analysis.NewAnalyzer(fileStorage, editor, ui.NewReportViewer(), formatter, logger)

	return &Commands{
		Run:     NewRunCommand(cfg, runner, collector, formatter),
		Analyze: NewAnalyzeCommand(cfg, analyzer),
		List:    NewListCommand(cfg, discoverer, formatter),
	}
}

// Register registers all commands with cobra. level is the diagnostics log level, adjusted
// from --log-level before any command runs.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config, level zap.AtomicLevel) {
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", cfg.LogLevel, "Diagnostics log level (debug, info, warn, error)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level.SetLevel(logging.ParseLevel(flags.LogLevel))
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the E2E tests",
		Long:  "Run pdftotext++ against every PDF with ground truth, diff the outputs and write a report per test case",
		Args:  cobra.NoArgs,
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.ValidatePaths(); err != nil {
				return err
			}
			cfg.Flags = flags.ToConfigFlags()
			cmd.SilenceUsage = true
			return nil
		},
	}
	runCmd.Flags().StringVar(&flags.PPPPath, "ppp", "", "Absolute path to the pdftotext++ executable (default "+cfg.PPPPath+")")
	runCmd.Flags().StringVar(&flags.ConfigPath, "config", "", "Absolute path to the config file (default "+cfg.ConfigPath+")")
	runCmd.Flags().StringVarP(&flags.TestFilter, "test", "t", "", "Run only tests whose slug or name matches the pattern (supports wildcards)")
	runCmd.Flags().StringVarP(&flags.PDFFilter, "pdf", "f", "", "Use only PDFs whose file name matches the pattern (supports wildcards, e.g. '*paper*')")
	runCmd.Flags().StringVar(&flags.MetricsFile, "metrics-file", "", "Write run metrics to this Prometheus text file")
	rootCmd.AddCommand(runCmd)

	// Analyze command
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze E2E test reports",
		Long:  "Aggregate the diff statistics of the report files in a results directory",
		Args:  cobra.NoArgs,
		RunE:  c.Analyze.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			cmd.SilenceUsage = true
			return nil
		},
	}
	analyzeCmd.Flags().StringVarP(&flags.ReportDir, "dir", "d", "", "Directory to scan for reports (default "+config.LatestResultDir+")")
	analyzeCmd.Flags().StringVarP(&flags.ReportMask, "mask", "m", "", "File name mask of report files (default "+cfg.ReportMask+")")
	analyzeCmd.Flags().StringVar(&flags.ResultsRoot, "results-root", "", "Directory holding one subdirectory per run (default "+cfg.ResultsRoot+")")
	analyzeCmd.Flags().BoolVar(&flags.VSCode, "vscode", false, "Open expected and actual output of each failing report in the editor's diff view")
	analyzeCmd.Flags().BoolVar(&flags.All, "all", false, "Include passing reports in the statistics")
	analyzeCmd.Flags().BoolVar(&flags.TUI, "tui", false, "Browse the analyzed reports interactively")
	rootCmd.AddCommand(analyzeCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the test cases of the config",
		Long:  "Resolve every test of the config file into its test cases without running them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.ValidatePaths(); err != nil {
				return err
			}
			cfg.Flags = flags.ToConfigFlags()
			cmd.SilenceUsage = true
			return nil
		},
	}
	listCmd.Flags().StringVar(&flags.PPPPath, "ppp", "", "Absolute path to the pdftotext++ executable")
	listCmd.Flags().StringVar(&flags.ConfigPath, "config", "", "Absolute path to the config file")
	listCmd.Flags().StringVarP(&flags.TestFilter, "test", "t", "", "List only tests whose slug or name matches the pattern")
	listCmd.Flags().StringVarP(&flags.PDFFilter, "pdf", "f", "", "List only PDFs whose file name matches the pattern")
	rootCmd.AddCommand(listCmd)
}

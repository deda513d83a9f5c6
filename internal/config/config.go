package config

import (
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Run settings
	PPPPath    string
	ConfigPath string

	// Analyze settings
	ReportDir   string
	ReportMask  string
	ResultsRoot string
	Editor      string

	// Diagnostics
	LogLevel  string
	LogFormat string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	PPPPath     string
	ConfigPath  string
	TestFilter  string
	PDFFilter   string
	MetricsFile string

	ReportDir   string
	ReportMask  string
	ResultsRoot string
	VSCode      bool
	All         bool
	TUI         bool
}

// New creates a new Config from defaults and environment variables
func New() *Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return &Config{
		PPPPath:     envOrDefault(EnvPPPPath, DefaultPPPPath),
		ConfigPath:  envOrDefault(EnvConfig, filepath.Join(cwd, DefaultConfigFile)),
		ReportDir:   LatestResultDir,
		ReportMask:  envOrDefault(EnvReportMask, DefaultReportMask),
		ResultsRoot: envOrDefault(EnvResultsRoot, filepath.Join(cwd, DefaultResultsDir)),
		Editor:      envOrDefault(EnvEditor, DefaultEditor),
		LogLevel:    envOrDefault(EnvLogLevel, DefaultLogLevel),
		LogFormat:   envOrDefault(EnvLogFormat, DefaultLogFormat),
	}
}

// GetPPPPath returns the executable path, using flag if provided
func (c *Config) GetPPPPath() string {
	if c.Flags.PPPPath != "" {
		return c.Flags.PPPPath
	}
	return c.PPPPath
}

// GetConfigPath returns the suite config path, using flag if provided
func (c *Config) GetConfigPath() string {
	if c.Flags.ConfigPath != "" {
		return c.Flags.ConfigPath
	}
	return c.ConfigPath
}

// GetReportDir returns the directory to analyze. It may be LatestResultDir.
func (c *Config) GetReportDir() string {
	if c.Flags.ReportDir != "" {
		return c.Flags.ReportDir
	}
	return c.ReportDir
}

// GetReportMask returns the report file name mask, using flag if provided
func (c *Config) GetReportMask() string {
	if c.Flags.ReportMask != "" {
		return c.Flags.ReportMask
	}
	return c.ReportMask
}

// GetResultsRoot returns the directory whose subdirectories hold per-run results
func (c *Config) GetResultsRoot() string {
	if c.Flags.ResultsRoot != "" {
		return c.Flags.ResultsRoot
	}
	return c.ResultsRoot
}

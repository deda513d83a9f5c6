package config

const (
	// DefaultPPPPath is the default path to the executable under test
	DefaultPPPPath = "/usr/bin/pdftotext++"
	// DefaultConfigFile is the default suite config, relative to the working directory
	DefaultConfigFile = "e2e/config.yml"
	// DefaultResultsDir is the default results root, relative to the working directory
	DefaultResultsDir = "e2e/results"
	// DefaultReportMask is the default file name mask of report files
	DefaultReportMask = "*.report"
	// LatestResultDir stands for the newest subdirectory of the results root
	LatestResultDir = "[latest-test-result-dir]"
	// DefaultEditor is invoked as "<editor> --diff <expected> <actual>"
	DefaultEditor = "code"
	// DefaultEnvFile is loaded from the working directory if present
	DefaultEnvFile = ".env"
	// DefaultLogLevel keeps diagnostics quiet unless asked for
	DefaultLogLevel = "warn"
	// DefaultLogFormat is the zap encoder used for diagnostics
	DefaultLogFormat = "console"
)

// Environment variables that override the defaults above.
const (
	EnvPPPPath     = "E2E_PPP_PATH"
	EnvConfig      = "E2E_CONFIG"
	EnvResultsRoot = "E2E_RESULTS_ROOT"
	EnvReportMask  = "E2E_REPORT_MASK"
	EnvEditor      = "E2E_EDITOR"
	EnvLogLevel    = "E2E_LOG_LEVEL"
	EnvLogFormat   = "E2E_LOG_FORMAT"
)

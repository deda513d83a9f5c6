package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the diagnostics logger. format is "console" or "json"; level is one of
// debug, info, warn, error. The returned level can be changed after the logger is built,
// which is how command-line flags take effect.
func NewLogger(format, level string) (*zap.Logger, zap.AtomicLevel, error) {
	var zapCfg zap.Config
	switch strings.ToLower(format) {
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
	case "json":
		zapCfg = zap.NewProductionConfig()
	default:
		return nil, zap.AtomicLevel{}, fmt.Errorf("unknown log format %q", format)
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("build logger: %w", err)
	}
	return logger, zapCfg.Level, nil
}

// ParseLevel maps a level name to a zap level, defaulting to info
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Package logger provides the global structured logger for R2X.
//
// The ingestion pipeline logs a lot of per-file detail (resolution hits,
// ambiguity warnings, empty files). Keeping one shared zap sugared logger,
// initialized once by the CLI, keeps that output consistent across packages.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance
	Logger *zap.SugaredLogger
	// JSONOutput tracks whether structured JSON output is enabled
	JSONOutput bool
)

func init() {
	// Safe no-op logger at package load time so library use before
	// Initialize() never panics
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger.
//
// jsonOutput selects machine-readable JSON records; otherwise a
// human-readable console encoder is used. verbosity follows the CLI flag
// count: 0 warns only, 1 (-v) adds info, 2+ (-vv) adds debug.
func Initialize(jsonOutput bool, verbosity int) error {
	JSONOutput = jsonOutput

	level := VerbosityToLevel(verbosity)

	var zapLogger *zap.Logger
	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		var err error
		zapLogger, err = config.Build()
		if err != nil {
			return err
		}
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(encoderConfig),
				zapcore.AddSync(os.Stderr),
				level,
			),
		)
	}

	Logger = zapLogger.Sugar()
	return nil
}

// InitializeForTesting installs a development logger that writes to stderr.
// Tests that want silence can leave the default no-op logger in place.
func InitializeForTesting() {
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		Logger = zap.NewNop().Sugar()
		return
	}
	Logger = zapLogger.Sugar()
}

// Sync flushes any buffered log entries. Safe to call on the no-op logger.
func Sync() {
	_ = Logger.Sync()
}

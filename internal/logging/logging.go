// Package logging builds the console logger used by the command line.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a sugared zap logger, the structured logger is available
// through Desugar for library code.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger returns a console logger for level (debug, normal or none).
// verbose forces debug output.
func NewLogger(level string, verbose bool) *Logger {
	if verbose {
		level = "debug"
	}

	var enabler zapcore.LevelEnabler
	switch level {
	case "debug":
		enabler = zapcore.DebugLevel
	case "normal":
		enabler = zapcore.InfoLevel
	default:
		return &Logger{zap.NewNop().Sugar()}
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(ec),
		zapcore.Lock(os.Stderr),
		enabler,
	)
	return &Logger{zap.New(core).Sugar()}
}

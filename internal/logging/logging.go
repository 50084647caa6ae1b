package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a sugared zap logger for structured CLI output.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger. With verbose set, debug messages are
// emitted and entries carry their caller.
func NewLogger(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableCaller = !verbose
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}

	return &Logger{logger.Sugar()}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}

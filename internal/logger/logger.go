// Package logger builds the application logger. The terminal belongs to
// the TUI, so logs go to a file under the data directory.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger writing to path. An unwritable path
// degrades to a no-op logger rather than failing startup.
func New(path string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return log.Sugar()
}

// Nop returns a logger that discards everything. Used by CLI paths and
// tests that don't want a log file.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// Package logging provides structured logging using Zap.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a sugared logger for the given environment. "production" uses a
// JSON encoder; every other environment uses a human-readable console encoder.
func New(env, level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	// Reports go to stdout; keep logs on stderr.
	cfg.OutputPaths = []string{"stderr"}

	base, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return base.Sugar(), nil
}

// Nop returns a logger that discards everything
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync(l *zap.SugaredLogger) {
	if l != nil {
		_ = l.Sync()
	}
}

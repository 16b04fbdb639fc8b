// Package logging builds the zap loggers used by the CLI and the dev endpoint.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pizzaorder/internal/config"
)

// Options select how a logger is built.
type Options struct {
	Config  config.LogConfig
	Verbose bool // force debug level
	// Interactive is set when the terminal is owned by the form UI; without a
	// log file nothing may be written to stdout/stderr.
	Interactive bool
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	if opts.Interactive && opts.Config.File == "" {
		return zap.NewNop(), nil
	}

	var zc zap.Config
	if opts.Config.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	level := zapcore.InfoLevel
	if opts.Config.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Config.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Config.Level, err)
		}
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if opts.Config.File != "" {
		zc.OutputPaths = []string{opts.Config.File}
		zc.ErrorOutputPaths = []string{opts.Config.File}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

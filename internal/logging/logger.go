// SPDX-License-Identifier: MIT

// Package logging builds the structured zap logger used by the linalg command.
// Library packages never log; only cmd/ code receives a Logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stderr keeps diagnostics apart from anything the command prints on stdout.
const stderr = "stderr"

// Logger wraps zap.Logger with helpers for factorization diagnostics.
type Logger struct {
	*zap.Logger
}

// Config selects the level, the encoder and the sinks.
type Config struct {
	Level       string // "debug", "info", "warn", "error"; empty means info
	Development bool   // console encoder with colored levels instead of JSON
	OutputPaths []string
}

// New builds a logger from cfg. Without OutputPaths it writes to stderr.
// Errors: an unknown level name, or a sink that cannot be opened.
func New(cfg Config) (*Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}
	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{stderr}
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.EncoderConfig = productionEncoder()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = outputs
	zapCfg.ErrorOutputPaths = []string{stderr}
	zapCfg.DisableStacktrace = !cfg.Development
	zapCfg.Sampling = nil

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{Logger: logger}, nil
}

// NewDefault returns an info-level JSON logger on stderr. It is the fallback
// when the configured logger cannot be built, so it never fails: if even
// stderr is unusable it degrades to a no-op logger.
func NewDefault() *Logger {
	logger, err := New(Config{Level: "info"})
	if err != nil {
		return NewNop()
	}

	return logger
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger { return &Logger{Logger: zap.NewNop()} }

// ForInput returns a child logger that tags every entry with the shape and
// precision of the matrix under test.
func (l *Logger) ForInput(rows, cols int, precision string) *Logger {
	return &Logger{Logger: l.With(
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.String("precision", precision),
	)}
}

// productionEncoder is zap's production JSON encoder with ISO-8601 times,
// a "message" key and no function names.
func productionEncoder() zapcore.EncoderConfig {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.MessageKey = "message"
	enc.FunctionKey = zapcore.OmitKey
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeDuration = zapcore.SecondsDurationEncoder

	return enc
}

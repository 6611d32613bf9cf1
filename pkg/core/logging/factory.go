// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating zap loggers
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name, added to every entry as "service"
	ServiceName string

	// Log level (debug, info, warn, error)
	Level string

	// Output format
	Format string // "json" or "text" (default: json)

	// File enables rotating file output besides stderr
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Additional outputs (besides stderr and File)
	AdditionalOutputs []io.Writer

	// NoStderr drops the stderr output, e.g. while a TUI owns the terminal
	NoStderr bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
		MaxSizeMB:   10,
		MaxBackups:  3,
		MaxAgeDays:  28,
	}
}

// NewLogger creates a zap logger writing to stderr and the configured outputs
func NewLogger(cfg LoggerConfig) *zap.Logger {
	level := parseLevel(cfg.Level)

	var writers []zapcore.WriteSyncer
	if !cfg.NoStderr {
		writers = append(writers, zapcore.Lock(os.Stderr))
	}
	if cfg.File != "" {
		writers = append(writers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}))
	}
	for _, w := range cfg.AdditionalOutputs {
		writers = append(writers, zapcore.AddSync(w))
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.NewMultiWriteSyncer(writers...), level)

	logger := zap.New(core, zap.AddCaller())
	if cfg.ServiceName != "" {
		logger = logger.With(zap.String("service", cfg.ServiceName))
	}
	return logger
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *zap.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

func newEncoder(format string) zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "text" {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encCfg)
	}
	return zapcore.NewJSONEncoder(encCfg)
}

// parseLevel converts a string level to a zap level
func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug", "trace":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Compatibility layer for code logging with key-value pairs

// Logger wraps a sugared zap logger
type Logger struct {
	sugar *zap.SugaredLogger
	name  string
}

// New creates a key-value logger with the default configuration
func New(name string) *Logger {
	return Wrap(NewSimpleLogger(name), name)
}

// Wrap adapts an existing zap logger
func Wrap(l *zap.Logger, name string) *Logger {
	return &Logger{sugar: l.Sugar(), name: name}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar(), name: "nop"}
}

// Named returns a child logger with name appended
func (l *Logger) Named(name string) *Logger {
	return &Logger{sugar: l.sugar.Named(name), name: l.name + "." + name}
}

// With returns a child logger carrying the key-value pairs
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...), name: l.name}
}

// WithLevel returns a logger that drops entries below level
func (l *Logger) WithLevel(level Level) *Logger {
	zl := l.sugar.Desugar().WithOptions(zap.IncreaseLevel(level.zapLevel()))
	return &Logger{sugar: zl.Sugar(), name: l.name}
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// Zap returns the underlying structured logger
func (l *Logger) Zap() *zap.Logger {
	return l.sugar.Desugar()
}

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// log is the global zap logger instance. It discards everything until
// Initialize is called.
var log = zap.NewNop()

// Config holds logger configuration
type Config struct {
	Debug bool
	// OutputPaths overrides the zap default of stderr.
	OutputPaths []string
}

// Initialize replaces the global logger according to cfg
func Initialize(cfg Config) error {
	var zapConfig zap.Config
	if cfg.Debug {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	if len(cfg.OutputPaths) > 0 {
		zapConfig.OutputPaths = cfg.OutputPaths
		zapConfig.ErrorOutputPaths = cfg.OutputPaths
	}

	l, err := zapConfig.Build()
	if err != nil {
		return err
	}
	log = l
	return nil
}

// Set replaces the global logger
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}

// Default returns the global logger
func Default() *zap.Logger {
	return log
}

// Sync flushes buffered log entries
func Sync() {
	_ = log.Sync()
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

// Error logs an error message
func Error(err error, fields ...zap.Field) {
	if err != nil {
		log.Error(err.Error(), fields...)
	} else {
		log.Error("error occurred", fields...)
	}
}

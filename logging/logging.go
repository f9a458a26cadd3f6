// Package logging provides the structured logger used across the assembly,
// config, and path planning packages.
package logging

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger is the logging surface passed into components that can reject a
// mutation or run a bounded search.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Named(name string) Logger
}

type impl struct {
	sugar *zap.SugaredLogger
}

func (l *impl) Debugf(template string, args ...interface{}) { l.sugar.Debugf(template, args...) }
func (l *impl) Infof(template string, args ...interface{})  { l.sugar.Infof(template, args...) }
func (l *impl) Warnf(template string, args ...interface{})  { l.sugar.Warnf(template, args...) }
func (l *impl) Named(name string) Logger {
	return &impl{sugar: l.sugar.Named(name)}
}

var (
	globalMu     sync.RWMutex
	globalLogger = NewLogger("startup")
)

// ReplaceGlobal replaces the process-wide logger.
func ReplaceGlobal(logger Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// Global returns the process-wide logger.
func Global() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// NewLoggerConfig returns the default production zap.Config: console
// encoding, info level, no stacktraces, colored levels.
func NewLoggerConfig() zap.Config {
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// NewLogger builds a named Logger using the default production config.
func NewLogger(name string) Logger {
	cfg := NewLoggerConfig()
	base, err := cfg.Build()
	if err != nil {
		base = zap.NewNop()
	}
	return &impl{sugar: base.Named(name).Sugar()}
}

// NewTestLogger builds a Logger that writes through the test's *testing.T.
func NewTestLogger(tb testing.TB) Logger {
	return &impl{sugar: zaptest.NewLogger(tb).Sugar()}
}

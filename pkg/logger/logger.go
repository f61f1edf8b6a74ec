package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Leveled logging facade for the service, backed by zap.
// Provides Debug/Info/Warn/Error/Fatal variants and Init(level).

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	rebuild()
}

func rebuild() {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	sugar = l.Sugar()
}

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "warn", "warning":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	case "fatal":
		level.SetLevel(zapcore.FatalLevel)
	default:
		level.SetLevel(zapcore.InfoLevel)
	}
}

// SetLogger swaps the underlying zap logger. Used by tests to observe output.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	sugar = l.Sugar()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debugf(format string, v ...interface{}) { get().Debugf(format, v...) }
func Infof(format string, v ...interface{})  { get().Infof(format, v...) }
func Warnf(format string, v ...interface{})  { get().Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { get().Errorf(format, v...) }
func Fatalf(format string, v ...interface{}) { get().Fatalf(format, v...) }

// Debug/Info/Warn/Error helpers that accept a single string
func Debug(v string) { get().Debug(v) }
func Info(v string)  { get().Info(v) }
func Warn(v string)  { get().Warn(v) }
func Error(v string) { get().Error(v) }

// LevelString returns the current level as text.
func LevelString() string {
	switch level.Level() {
	case zapcore.DebugLevel:
		return "debug"
	case zapcore.WarnLevel:
		return "warn"
	case zapcore.ErrorLevel:
		return "error"
	case zapcore.FatalLevel:
		return "fatal"
	}
	return "info"
}

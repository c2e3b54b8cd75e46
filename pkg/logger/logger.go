// Package logger wraps a process-wide zap logger. All output goes to stderr
// so stdout stays reserved for JSON results.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. Until Init is called it writes warnings
// and errors to stderr, so library callers still see failed searches.
var Log = newDefault()

// stderr resolves os.Stderr on every write rather than once at startup.
type stderr struct{}

func (stderr) Write(p []byte) (int, error) { return os.Stderr.Write(p) }
func (stderr) Sync() error                 { return nil }

func newDefault() *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(stderr{}), zap.WarnLevel)
	return zap.New(core)
}

// Init builds the global logger with the given level ("debug", "info",
// "warn", "error") and format ("json" or "text").
func Init(level, format string) error {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// ParseLevel maps a level name to a zap level, defaulting to warn so that a
// plain CLI run only shows failures.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.WarnLevel
	}
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}

// Named returns a child of the global logger.
func Named(name string) *zap.Logger {
	return Log.Named(name)
}

// WithTraceID returns a logger that tags every entry with traceID.
func WithTraceID(l *zap.Logger, traceID string) *zap.Logger {
	if l == nil {
		l = Log
	}
	return l.With(zap.String("trace_id", traceID))
}

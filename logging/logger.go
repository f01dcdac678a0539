// Package logging holds the process-wide zap logger and small helpers around it.
//
// Library packages take a *zap.Logger through their options; commands call
// Setup once and hand L() to them. The package-level helpers take key/value
// pairs like zap's SugaredLogger.
package logging

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const requestIDKey contextKey = "requestID"

// Config selects level and encoding.
type Config struct {
	// Level is debug, info, warn or error.
	Level string `koanf:"level"`
	// Format is console or json.
	Format string `koanf:"format"`
}

var current atomic.Pointer[zap.Logger]

func init() {
	l, err := New(Config{Level: "info", Format: "console"})
	if err != nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// New builds a logger writing to stderr.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
	}

	var zc zap.Config
	switch strings.ToLower(cfg.Format) {
	case "", "console":
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	case "json":
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "time"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true

	return zc.Build()
}

// Setup replaces the process logger according to cfg.
func Setup(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	SetLogger(l)

	return nil
}

// SetLogger replaces the process logger. Nil installs a no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// L returns the process logger.
func L() *zap.Logger { return current.Load() }

// Sync flushes buffered entries.
func Sync() {
	_ = L().Sync()
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}

	return ""
}

func withRequestID(ctx context.Context, kv []any) []any {
	if id := GetRequestID(ctx); id != "" {
		return append([]any{"requestID", id}, kv...)
	}

	return kv
}

func sugar() *zap.SugaredLogger {
	return L().WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// Debug logs internal component behaviour.
func Debug(msg string, kv ...any) { sugar().Debugw(msg, kv...) }

// DebugContext logs at debug level with the request id of ctx.
func DebugContext(ctx context.Context, msg string, kv ...any) {
	sugar().Debugw(msg, withRequestID(ctx, kv)...)
}

// Info logs user-facing operations.
func Info(msg string, kv ...any) { sugar().Infow(msg, kv...) }

// InfoContext logs at info level with the request id of ctx.
func InfoContext(ctx context.Context, msg string, kv ...any) {
	sugar().Infow(msg, withRequestID(ctx, kv)...)
}

// Warn logs conditions that should be monitored.
func Warn(msg string, kv ...any) { sugar().Warnw(msg, kv...) }

// WarnContext logs at warn level with the request id of ctx.
func WarnContext(ctx context.Context, msg string, kv ...any) {
	sugar().Warnw(msg, withRequestID(ctx, kv)...)
}

// Error logs failures.
func Error(msg string, kv ...any) { sugar().Errorw(msg, kv...) }

// ErrorContext logs at error level with the request id of ctx.
func ErrorContext(ctx context.Context, msg string, kv ...any) {
	sugar().Errorw(msg, withRequestID(ctx, kv)...)
}

// Fatal logs at error level and exits.
func Fatal(msg string, kv ...any) {
	sugar().Errorw(msg, kv...)
	Sync()
	os.Exit(1)
}

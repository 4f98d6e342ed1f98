// Package logger provides a structured, levelled logger built on log/slog.
//
// WithCtx returns a logger with the request ID already attached, so every
// log line emitted from a handler is automatically correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("report computed", "report", "top_products")
//	// → time=... level=INFO msg="report computed" request_id=a1b2c3d4 report=top_products
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/Gurpreet0022/sales-dashboard/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// EnableMongoSink tees every log record into a MongoDB collection.
// Called from server boot when LOG_MONGO_URI is configured; the returned
// close function flushes pending records and disconnects.
func EnableMongoSink() (func(), error) {
	mh, err := NewMongoHandler(config.LogMongoURI(), config.LogMongoDatabase(), config.LogMongoCollection())
	if err != nil {
		return nil, err
	}

	L = slog.New(teeHandler{primary: L.Handler(), secondary: mh})
	slog.SetDefault(L)
	return func() { mh.Close() }, nil
}

// teeHandler fans records out to stdout and the Mongo sink.
type teeHandler struct {
	primary   slog.Handler
	secondary slog.Handler
}

func (t teeHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return t.primary.Enabled(ctx, lvl)
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	_ = t.secondary.Handle(ctx, r.Clone())
	return t.primary.Handle(ctx, r)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return teeHandler{primary: t.primary.WithAttrs(attrs), secondary: t.secondary.WithAttrs(attrs)}
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return teeHandler{primary: t.primary.WithGroup(name), secondary: t.secondary.WithGroup(name)}
}

// ─────────────────────────────────────────────
// Context-aware logger
// ─────────────────────────────────────────────

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns a *slog.Logger pre-tagged with the request_id found in ctx.
// If no per-request logger is present the base logger is returned unchanged.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }

// Package logger provides a structured, levelled logger built on log/slog.
//
// Setup chooses the handler from the app environment: JSON for production
// (log aggregators), text for everything else. When LOG_MONGO_URI is set,
// log records are additionally fanned out to a MongoDB collection by an
// asynchronous handler that never blocks the request path.
//
// WithCtx returns a logger with the request ID already attached, so every
// log line from a handler is automatically correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("sale recorded", "sale_id", sale.ID)
//	// → time=... level=INFO msg="sale recorded" request_id=a1b2c3d4 sale_id=7
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/vanij/config"
)

// L is the process-wide base logger. Setup replaces it; until then it is a
// plain text logger so early boot messages are not lost.
var L = slog.New(slog.NewTextHandler(os.Stdout, nil))

// Setup configures the base logger from cfg and returns a shutdown function
// that flushes any asynchronous sinks. The returned function is safe to call
// even when no sink was configured.
func Setup(cfg *config.Config) func() {
	var handler slog.Handler

	switch cfg.AppEnv {
	case "production", "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	shutdown := func() {}

	if cfg.LogMongoURI != "" {
		mh, err := NewMongoHandler(cfg.LogMongoURI, cfg.LogMongoDatabase, "logs", handler)
		if err != nil {
			slog.New(handler).Warn("logger: mongo sink disabled", "error", err)
		} else {
			handler = NewTeeHandler(handler, mh)
			shutdown = func() { mh.Close() }
		}
	}

	L = slog.New(handler)
	slog.SetDefault(L)
	return shutdown
}

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the per-request logger injected by the access-log
// middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware, not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level on the base logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level on the base logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level on the base logger.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level on the base logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }

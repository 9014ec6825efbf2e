// Package logging builds the process logger and carries request-scoped
// loggers through context.
//
//	logger := logging.New(os.Stderr, logging.Options{Level: "info", Format: "json"})
//	ctx, log := logging.With(ctx, slog.String("resource", res.Slug))
//
// Error logs name the operation, the record and the full error chain:
//
//	logger.ErrorContext(ctx, "failed to fetch record",
//	    slog.String("operation", "ResourceService.Get"),
//	    slog.String("resource", res.Slug),
//	    slog.Int64("id", id),
//	    slog.Any("error", err),
//	)
//
// Behind the logging middleware the context logger already carries
// request_id and correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn or error. Anything else means info.
	Level string
	// Format is "text" or "json". Anything else means json.
	Format string
	// Attrs are attached to every record.
	Attrs []slog.Attr
}

// New returns a logger writing to w. Debug loggers also report the source
// location. Credentials and citizen identifiers are masked on the way out.
func New(w io.Writer, opts Options) *slog.Logger {
	level := ParseLevel(opts.Level)
	handlerOpts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "text") {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}
	if len(opts.Attrs) > 0 {
		handler = handler.WithAttrs(opts.Attrs)
	}
	return slog.New(handler)
}

// ParseLevel maps a configured level name to slog.Level, ignoring case.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With derives a logger from the one in ctx, adds args to it and stores it
// back, so later FromContext calls see the extra attributes.
func With(ctx context.Context, args ...any) (context.Context, *slog.Logger) {
	logger := FromContext(ctx).With(args...)
	return WithLogger(ctx, logger), logger
}

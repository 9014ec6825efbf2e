package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/disaster-response-web/internal/platform/telemetry"
)

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

// Chain composes middlewares so that the first argument is the outermost:
// Chain(a, b)(h) is a(b(h)). Nil entries are skipped.
func Chain(middlewares ...Middleware) Middleware {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			if middlewares[i] != nil {
				handler = middlewares[i](handler)
			}
		}
		return handler
	}
}

// Stack is the middleware every page and probe goes through.
type Stack struct {
	Logger  *slog.Logger
	Metrics *telemetry.Metrics

	// RequestTimeout bounds a single request. Zero disables the deadline.
	RequestTimeout time.Duration

	// ErrorPage and TimeoutPage are served to browsers after a panic or an
	// expired deadline. Nil falls back to problem+json and a bare 504.
	ErrorPage   http.Handler
	TimeoutPage http.Handler
}

// Build returns the stack as one middleware. Recovery is outermost so it
// also covers the logging and tracing layers; the deadline is innermost so
// the access log records the 504.
func (s Stack) Build() Middleware {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var deadline Middleware
	if s.RequestTimeout > 0 {
		deadline = Timeout(s.RequestTimeout, s.TimeoutPage)
	}

	return Chain(
		Recovery(logger, s.ErrorPage),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(s.Metrics),
		Logging(logger),
		deadline,
	)
}

package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/disaster-response-web/internal/platform/logging"
)

// Logging writes an access log entry when a request starts and when it
// completes, and puts a logger tagged with the request and correlation ids
// into the context for handlers.
//
// 5xx completions log at Error. Probes under /health/ log at Debug so
// orchestrator polling stays out of the page traffic. Request headers, with
// credentials masked, are logged at Debug.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx, log := logging.With(logging.WithLogger(r.Context(), logger),
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)

			level := slog.LevelInfo
			if strings.HasPrefix(r.URL.Path, "/health/") {
				level = slog.LevelDebug
			}

			log.Log(ctx, level, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if log.Enabled(ctx, slog.LevelDebug) {
				log.DebugContext(ctx, "request headers",
					slog.Any("headers", slog.GroupValue(RedactHeaders(r.Header)...)))
			}

			sr := newResponseWriter(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			if sr.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sr.status),
				slog.Int64("bytes", sr.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if route, slug := routeOf(r); route != "" {
				attrs = append(attrs, slog.String("route", route))
				if slug != "" {
					attrs = append(attrs, slog.String("resource", slug))
				}
			}
			log.Log(ctx, level, "request completed", attrs...)
		})
	}
}

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/disaster-response-web/internal/platform/httpclient"
)

// Tracing headers read from callers and echoed on every response.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"

	maxIDLen = 128
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id in ctx, for this process and for calls to the
// resource API.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey{}, id), id)
}

// RequestIDFromContext returns the request id, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID stores id in ctx, for this process and for calls to the
// resource API.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// CorrelationIDFromContext returns the correlation id, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID keeps a well-formed incoming X-Request-ID and otherwise mints a
// UUID v4.
func RequestID() Middleware {
	return carryID(HeaderRequestID, WithRequestID, func(*http.Request) string {
		return uuid.NewString()
	})
}

// CorrelationID keeps a well-formed incoming X-Correlation-ID and otherwise
// reuses the request id, so it must run after RequestID.
func CorrelationID() Middleware {
	return carryID(HeaderCorrelationID, WithCorrelationID, func(r *http.Request) string {
		return RequestIDFromContext(r.Context())
	})
}

func carryID(header string, store func(context.Context, string) context.Context, fallback func(*http.Request) string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if !wellFormedID(id) {
				id = fallback(r)
			}
			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(store(r.Context(), id)))
		})
	}
}

// wellFormedID accepts 1 to 128 bytes of visible ASCII. Anything else could
// smuggle line breaks or huge values into logs and upstream headers.
func wellFormedID(id string) bool {
	if id == "" || len(id) > maxIDLen {
		return false
	}
	for _, c := range []byte(id) {
		if c < '!' || c > '~' {
			return false
		}
	}
	return true
}

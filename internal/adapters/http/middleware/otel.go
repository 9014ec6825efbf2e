package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/disaster-response-web/internal/platform/telemetry"
)

// OpenTelemetry returns middleware that creates a server span per request
// and records request metrics. W3C Trace Context is extracted from the
// incoming headers.
//
// When the request went through a chi router the span is renamed after the
// matched route ("HTTP GET /{resource}/editar/{id}") so page views of
// different records share a name, and the resource slug is attached. A nil
// metrics records nothing.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			tracer := otel.GetTracerProvider().Tracer("middleware")
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.url", r.URL.String()),
				),
			)
			defer span.End()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			route, slug := routeOf(r)
			if route != "" {
				span.SetName("HTTP " + r.Method + " " + route)
				span.SetAttributes(attribute.String("http.route", route))
			}
			if slug != "" {
				span.SetAttributes(telemetry.AttrResource.String(slug))
			}

			status := rw.status
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			metrics.RecordServerRequest(ctx, r.Method, slug, status, time.Since(start))
		})
	}
}

// routeOf returns the matched chi route pattern and the {resource} URL
// parameter, both empty when no chi routing happened.
func routeOf(r *http.Request) (route, slug string) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "", ""
	}
	return rctx.RoutePattern(), rctx.URLParam("resource")
}

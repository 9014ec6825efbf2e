// Package httpclient is the outbound HTTP client used to reach the resource
// API. Every call passes, in order, through a circuit breaker, an optional
// rate limiter, request and correlation id propagation, a client span, and
// a retry loop with jittered exponential backoff.
//
//	client := httpclient.New(&cfg.Client,
//	    httpclient.WithName("resource-api"),
//	    httpclient.WithMetrics(metrics),
//	    httpclient.WithLogger(logger),
//	)
//	resp, err := client.Do(ctx, req)
//
// Inbound middleware stores the ids with WithRequestID and
// WithCorrelationID; Do copies them onto the outgoing headers.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/disaster-response-web/internal/platform/config"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/telemetry"
)

const (
	defaultName      = "resource-api"
	defaultUserAgent = "disaster-response-web"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request id for outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the inbound correlation id for outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Option customizes a Client.
type Option func(*Client)

// WithName names the downstream service in spans, metrics and breaker logs.
func WithName(name string) Option {
	return func(c *Client) { c.name = name }
}

// WithMetrics records client metrics. Nil disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger sets the logger used for breaker state changes.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.http.Transport = rt }
}

// Client sends requests to one downstream API.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter
	policy  retryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client from cfg. The breaker trips after
// circuit_breaker.max_failures consecutive failed calls.
func New(cfg *config.ClientConfig, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		name:    defaultName,
		policy:  newRetryPolicy(cfg.Retry),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}
	c.breaker = c.newBreaker(cfg.CircuitBreaker)
	return c
}

func (c *Client) newBreaker(cfg config.CircuitBreakerConfig) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        c.name,
		MaxRequests: clampUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do sends req. Outcomes:
//
//   - a non-retryable status (any 2xx-4xx except 429): resp, nil;
//   - retries exhausted on 429 or 5xx: the last resp with its body unread,
//     plus an error;
//   - breaker open, rate limit wait cancelled or transport failure: nil, err.
//
// The caller closes resp.Body whenever resp is non-nil.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, fmt.Errorf("waiting for rate limit: %w", err)
			}
		}

		propagateIDs(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		var sendErr error
		resp, sendErr = c.send(spanCtx, req.WithContext(spanCtx))
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if sendErr != nil {
			span.RecordError(sendErr)
			span.SetStatus(codes.Error, sendErr.Error())
		}
		return struct{}{}, sendErr
	})

	c.record(ctx, req.Method, resp, err, time.Since(start))
	return resp, err
}

// BaseURL is the configured API root, empty when none is set.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name is the downstream service name.
func (c *Client) Name() string {
	return c.name
}

// CircuitBreakerState is "closed", "half-open" or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

func propagateIDs(ctx context.Context, req *http.Request) {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", defaultUserAgent)
	}
}

// startSpan opens a client span and writes its trace context into the
// outgoing headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer("httpclient").Start(ctx,
		"HTTP "+req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			telemetry.AttrPeerService.String(c.name),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func (c *Client) record(ctx context.Context, method string, resp *http.Response, err error, elapsed time.Duration) {
	status := 0
	result := telemetry.ResultError
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = telemetry.ResultSuccess
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = telemetry.ResultCircuitOpen
	}
	c.metrics.RecordClientRequest(ctx, c.name, method, status, result, elapsed)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}

// Package telemetry sets up OpenTelemetry tracing and metrics for the front
// end. Spans and metrics go to stdout during development and to an OTLP/HTTP
// collector in deployed profiles.
//
//	p, err := telemetry.Setup(ctx, telemetry.Settings{
//	    ServiceName: "disaster-response-web",
//	    Exporter:    telemetry.ExporterOTLP,
//	    Endpoint:    "http://otel-collector:4318",
//	})
//	defer p.Shutdown(ctx)
//	p.Metrics.RecordFormSubmission(ctx, "alertas", "create", telemetry.ResultSuccess)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var errEmptyEndpoint = errors.New("otlp exporter requires an endpoint")

// Settings selects where telemetry goes.
type Settings struct {
	ServiceName string
	// Exporter is ExporterStdout or ExporterOTLP.
	Exporter string
	// Endpoint is the collector URL, required for OTLP. An https scheme
	// enables TLS.
	Endpoint string
}

// Providers owns the SDK providers registered by Setup. The zero value is
// a disabled setup: Metrics is nil and Shutdown does nothing.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup builds the trace and metric pipelines, registers them as the global
// providers together with the W3C trace-context and baggage propagators, and
// creates the application instruments. Nothing is registered on error.
func Setup(ctx context.Context, s Settings) (*Providers, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(s.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	metricExporter, err := newMetricExporter(ctx, s)
	if err != nil {
		_ = spanExporter.Shutdown(ctx)
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	p := &Providers{
		Tracer: sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(spanExporter),
			sdktrace.WithResource(res),
		),
		Meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
			sdkmetric.WithResource(res),
		),
	}

	p.Metrics, err = NewMetrics(p.Meter, s.ServiceName)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops both providers. Safe on a nil or zero value.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func newSpanExporter(ctx context.Context, s Settings) (sdktrace.SpanExporter, error) {
	switch s.Exporter {
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		host, secure, err := collector(s.Endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if !secure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("unsupported trace exporter %q", s.Exporter)
	}
}

func newMetricExporter(ctx context.Context, s Settings) (sdkmetric.Exporter, error) {
	switch s.Exporter {
	case ExporterStdout:
		return stdoutmetric.New()
	case ExporterOTLP:
		host, secure, err := collector(s.Endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if !secure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("unsupported metric exporter %q", s.Exporter)
	}
}

// collector splits an endpoint URL into the host:port the OTLP exporters
// expect and whether TLS is on. A bare host:port is used as is, without TLS.
func collector(endpoint string) (hostPort string, secure bool, err error) {
	if endpoint == "" {
		return "", false, errEmptyEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, false, nil
	}
	return u.Host, u.Scheme == "https", nil
}

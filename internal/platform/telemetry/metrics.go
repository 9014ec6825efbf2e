package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrResource    = attribute.Key("app.resource")
	AttrFormMode    = attribute.Key("app.form.mode")
)

// Outcomes recorded under AttrResult.
const (
	ResultSuccess         = "success"
	ResultValidationError = "validation_error"
	ResultError           = "error"
	ResultCircuitOpen     = "circuit_open"
	ResultPartial         = "partial"
)

// Metrics holds the application's instruments. Every Record method is a
// no-op on a nil *Metrics, which is what a disabled setup hands out.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	FormSubmissionTotal   metric.Int64Counter
	DashboardDuration     metric.Float64Histogram
}

// NewMetrics registers the instruments on a meter named after serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}
	var err error

	if m.ServerRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of page and probe requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}
	if m.ServerRequestTotal, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Page and probe requests served"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}
	if m.ClientRequestDuration, err = meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of calls to the resource API"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.client.request.duration: %w", err)
	}
	if m.ClientRequestTotal, err = meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Calls made to the resource API"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating http.client.request.total: %w", err)
	}
	if m.FormSubmissionTotal, err = meter.Int64Counter("form.submission.total",
		metric.WithDescription("Create and edit form submissions"),
		metric.WithUnit("{submission}"),
	); err != nil {
		return nil, fmt.Errorf("creating form.submission.total: %w", err)
	}
	if m.DashboardDuration, err = meter.Float64Histogram("dashboard.summary.duration",
		metric.WithDescription("Time to build the home page summary across all resources"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating dashboard.summary.duration: %w", err)
	}
	return m, nil
}

// RecordServerRequest records one served request. slug is the resource of
// the page, empty for the home page and probes.
func (m *Metrics) RecordServerRequest(ctx context.Context, method, slug string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if status >= http.StatusBadRequest {
		result = ResultError
	}
	attrs := []attribute.KeyValue{
		AttrHTTPMethod.String(method),
		AttrHTTPStatus.Int(status),
		AttrResult.String(result),
	}
	if slug != "" {
		attrs = append(attrs, AttrResource.String(slug))
	}
	opt := metric.WithAttributes(attrs...)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), opt)
	m.ServerRequestTotal.Add(ctx, 1, opt)
}

// RecordClientRequest records one call to peer. status is 0 when no
// response arrived.
func (m *Metrics) RecordClientRequest(ctx context.Context, peer, method string, status int, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	opt := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPStatus.Int(status),
		AttrPeerService.String(peer),
		AttrResult.String(result),
	)
	m.ClientRequestDuration.Record(ctx, elapsed.Seconds(), opt)
	m.ClientRequestTotal.Add(ctx, 1, opt)
}

// RecordFormSubmission counts one create or edit form submission.
func (m *Metrics) RecordFormSubmission(ctx context.Context, resource, mode, result string) {
	if m == nil || m.FormSubmissionTotal == nil {
		return
	}
	m.FormSubmissionTotal.Add(ctx, 1, metric.WithAttributes(
		AttrResource.String(resource),
		AttrFormMode.String(mode),
		AttrResult.String(result),
	))
}

// RecordDashboard records how long the home page summary took and whether
// any resource failed.
func (m *Metrics) RecordDashboard(ctx context.Context, failed int, elapsed time.Duration) {
	if m == nil || m.DashboardDuration == nil {
		return
	}
	result := ResultSuccess
	if failed > 0 {
		result = ResultPartial
	}
	m.DashboardDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(AttrResult.String(result)))
}

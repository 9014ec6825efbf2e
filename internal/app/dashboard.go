package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/disaster-response-web/internal/app/fanout"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/resource"
	"github.com/jsamuelsen11/disaster-response-web/internal/ports"
)

// Compile-time check that Dashboard implements ports.DashboardService.
var _ ports.DashboardService = (*Dashboard)(nil)

// DashboardRecorder observes summary builds. *telemetry.Metrics satisfies it.
type DashboardRecorder interface {
	RecordDashboard(ctx context.Context, failed int, elapsed time.Duration)
}

// DashboardOption customizes a Dashboard.
type DashboardOption func(*Dashboard)

// WithDashboardRecorder reports every Summary to r.
func WithDashboardRecorder(r DashboardRecorder) DashboardOption {
	return func(d *Dashboard) { d.recorder = r }
}

// Dashboard builds the home page summary from the first page of every
// resource.
type Dashboard struct {
	service   ports.ResourceService
	resources []*resource.Resource
	pageSize  int
	workers   int
	logger    *slog.Logger
	recorder  DashboardRecorder
}

// NewDashboard creates a Dashboard over resources, fetching pageSize records
// each with at most workers concurrent calls.
func NewDashboard(service ports.ResourceService, resources []*resource.Resource, pageSize, workers int, logger *slog.Logger, opts ...DashboardOption) *Dashboard {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := &Dashboard{
		service:   service,
		resources: resources,
		pageSize:  pageSize,
		workers:   workers,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Summary lists every resource concurrently. Results keep catalog order and
// a failed resource never hides the others.
func (d *Dashboard) Summary(ctx context.Context) []ports.ResourceSummary {
	start := time.Now()
	results := fanout.Run(ctx, d.workers, d.resources, func(ctx context.Context, res *resource.Resource) (int, error) {
		records, err := d.service.List(ctx, res, 0, d.pageSize)
		return len(records), err
	})

	out := make([]ports.ResourceSummary, len(results))
	failed := 0
	for i, r := range results {
		out[i] = ports.ResourceSummary{Resource: d.resources[i], Count: r.Value, Err: r.Err}
		if r.Err != nil {
			failed++
		}
	}

	if d.recorder != nil {
		d.recorder.RecordDashboard(ctx, failed, time.Since(start))
	}
	d.logger.InfoContext(ctx, "dashboard summary built",
		slog.Int("resources", len(out)),
		slog.Int("failed", failed),
	)
	return out
}

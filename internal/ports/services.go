package ports

import (
	"context"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/form"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/resource"
)

// ResourceService defines the service port for entity CRUD.
// Implemented by the application layer; called by inbound adapters (handlers).
type ResourceService interface {
	// List returns one page of records.
	List(ctx context.Context, res *resource.Resource, page, pageSize int) ([]domain.Record, error)

	// Get returns a single record by ID.
	// Returns domain.ErrNotFound if the record does not exist.
	Get(ctx context.Context, res *resource.Resource, id int64) (domain.Record, error)

	// Create submits a normalized payload.
	// Returns domain.ErrReadOnly for list-only resources.
	Create(ctx context.Context, res *resource.Resource, payload form.Payload) (domain.Record, error)

	// Update submits a normalized payload for an existing record.
	// Returns domain.ErrReadOnly for list-only resources.
	Update(ctx context.Context, res *resource.Resource, id int64, payload form.Payload) (domain.Record, error)

	// Delete removes a record.
	// Returns domain.ErrReadOnly for list-only resources.
	Delete(ctx context.Context, res *resource.Resource, id int64) error
}

// DashboardService builds the home page summary.
type DashboardService interface {
	// Summary fetches the first page of every resource concurrently. It never
	// fails as a whole; per-resource failures are reported in the result.
	Summary(ctx context.Context) []ResourceSummary
}

// ResourceSummary is one dashboard tile.
type ResourceSummary struct {
	Resource *resource.Resource
	// Count is the number of records on the first page.
	Count int
	Err   error
}

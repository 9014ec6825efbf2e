package ports

import (
	"context"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/form"
)

// ResourceClient defines the client port for the downstream REST API.
// Implemented by the ACL adapter; called by the application layer.
// Every collection lives at {base}/{collection} and shares the same verbs,
// so the collection slug is passed on each call.
type ResourceClient interface {
	// List returns one page of a collection. Pages are zero-based.
	List(ctx context.Context, collection string, page, pageSize int) ([]domain.Record, error)

	// Get returns a single record by ID.
	// Returns domain.ErrNotFound if the record does not exist.
	Get(ctx context.Context, collection string, id int64) (domain.Record, error)

	// Create posts payload and returns the created record.
	Create(ctx context.Context, collection string, payload form.Payload) (domain.Record, error)

	// Update replaces the record with payload and returns the API response.
	// The response may be an empty record when the API answers without a body.
	Update(ctx context.Context, collection string, id int64, payload form.Payload) (domain.Record, error)

	// Delete removes a record by ID. The response body is ignored.
	Delete(ctx context.Context, collection string, id int64) error
}

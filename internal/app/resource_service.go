// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/form"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/resource"
	"github.com/jsamuelsen11/disaster-response-web/internal/ports"
)

// Compile-time check that ResourceService implements ports.ResourceService.
var _ ports.ResourceService = (*ResourceService)(nil)

// ResourceService implements ports.ResourceService by forwarding to the
// ResourceClient port. It adds structured logging and refuses writes to
// list-only resources, but holds no state of its own.
type ResourceService struct {
	client ports.ResourceClient
	logger *slog.Logger
}

// NewResourceService creates a ResourceService. A nil logger discards output.
func NewResourceService(client ports.ResourceClient, logger *slog.Logger) *ResourceService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ResourceService{client: client, logger: logger}
}

// List returns one page of records of res.
func (s *ResourceService) List(ctx context.Context, res *resource.Resource, page, pageSize int) ([]domain.Record, error) {
	s.logger.InfoContext(ctx, "listing records",
		slog.String("resource", res.Slug),
		slog.Int("page", page),
		slog.Int("page_size", pageSize),
	)

	records, err := s.client.List(ctx, res.Slug, page, pageSize)
	if err != nil {
		s.logFailure(ctx, "List", res, 0, err)
		return nil, err
	}
	return records, nil
}

// Get returns a single record of res.
func (s *ResourceService) Get(ctx context.Context, res *resource.Resource, id int64) (domain.Record, error) {
	s.logger.InfoContext(ctx, "fetching record", slog.String("resource", res.Slug), slog.Int64("id", id))

	rec, err := s.client.Get(ctx, res.Slug, id)
	if err != nil {
		s.logFailure(ctx, "Get", res, id, err)
		return nil, err
	}
	return rec, nil
}

// Create submits an already normalized payload.
func (s *ResourceService) Create(ctx context.Context, res *resource.Resource, payload form.Payload) (domain.Record, error) {
	if err := writable(res); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "creating record", slog.String("resource", res.Slug))

	rec, err := s.client.Create(ctx, res.Slug, payload)
	if err != nil {
		s.logFailure(ctx, "Create", res, 0, err)
		return nil, err
	}
	return rec, nil
}

// Update submits an already normalized payload for record id.
func (s *ResourceService) Update(ctx context.Context, res *resource.Resource, id int64, payload form.Payload) (domain.Record, error) {
	if err := writable(res); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "updating record", slog.String("resource", res.Slug), slog.Int64("id", id))

	rec, err := s.client.Update(ctx, res.Slug, id, payload)
	if err != nil {
		s.logFailure(ctx, "Update", res, id, err)
		return nil, err
	}
	return rec, nil
}

// Delete removes record id of res.
func (s *ResourceService) Delete(ctx context.Context, res *resource.Resource, id int64) error {
	if err := writable(res); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "deleting record", slog.String("resource", res.Slug), slog.Int64("id", id))

	if err := s.client.Delete(ctx, res.Slug, id); err != nil {
		s.logFailure(ctx, "Delete", res, id, err)
		return err
	}
	return nil
}

func (s *ResourceService) logFailure(ctx context.Context, op string, res *resource.Resource, id int64, err error) {
	attrs := []any{
		slog.String("operation", op),
		slog.String("resource", res.Slug),
		slog.Any("error", err),
	}
	if id > 0 {
		attrs = append(attrs, slog.Int64("id", id))
	}
	s.logger.ErrorContext(ctx, "resource api call failed", attrs...)
}

func writable(res *resource.Resource) error {
	if res.ReadOnly() {
		return fmt.Errorf("%s: %w", res.Slug, domain.ErrReadOnly)
	}
	return nil
}

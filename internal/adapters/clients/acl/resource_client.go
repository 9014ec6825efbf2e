package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/form"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/httpclient"
	"github.com/jsamuelsen11/disaster-response-web/internal/ports"
)

// Compile-time interface check.
var _ ports.ResourceClient = (*ResourceClient)(nil)

// ResourceClient is the outbound adapter for the resource API. It implements
// [ports.ResourceClient]: every collection lives at {base}/{collection} and
// answers the same five verbs.
//
// Records cross this boundary as decoded JSON objects with numbers kept as
// json.Number, so ids survive as integers. HTTP failures become *APIError
// (or *domain.ValidationError for RFC 7807 field errors) via
// [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry and OpenTelemetry tracing for every call.
type ResourceClient struct {
	req *Requester
}

// NewResourceClient creates a ResourceClient that sends requests through the
// given [httpclient.Client]. An empty client BaseURL is allowed; every call
// then fails with [domain.ErrNotConfigured].
func NewResourceClient(client *httpclient.Client, logger *slog.Logger) *ResourceClient {
	return &ResourceClient{req: NewRequester(client, logger)}
}

// List fetches GET /{collection}?page=&pageSize=. A null body is an empty
// page.
func (c *ResourceClient) List(ctx context.Context, collection string, page, pageSize int) ([]domain.Record, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var records []domain.Record
	if err := c.req.Do(ctx, http.MethodGet, collectionPath(collection)+"?"+q.Encode(), nil, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}

// Get fetches GET /{collection}/{id}. Returns [domain.ErrNotFound] if the API
// answers 404.
func (c *ResourceClient) Get(ctx context.Context, collection string, id int64) (domain.Record, error) {
	var rec domain.Record
	if err := c.req.Do(ctx, http.MethodGet, itemPath(collection, id), nil, &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("GET %s: empty response: %w", itemPath(collection, id), domain.ErrNotFound)
	}
	return rec, nil
}

// Create sends POST /{collection} and returns the created record.
func (c *ResourceClient) Create(ctx context.Context, collection string, payload form.Payload) (domain.Record, error) {
	var rec domain.Record
	if err := c.req.Do(ctx, http.MethodPost, collectionPath(collection), payload, &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = domain.Record{}
	}
	return rec, nil
}

// Update sends PUT /{collection}/{id}. The API may answer without a body, in
// which case the returned record is empty.
func (c *ResourceClient) Update(ctx context.Context, collection string, id int64, payload form.Payload) (domain.Record, error) {
	var rec domain.Record
	if err := c.req.Do(ctx, http.MethodPut, itemPath(collection, id), payload, &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = domain.Record{}
	}
	return rec, nil
}

// Delete sends DELETE /{collection}/{id}; the response body is ignored.
func (c *ResourceClient) Delete(ctx context.Context, collection string, id int64) error {
	return c.req.Do(ctx, http.MethodDelete, itemPath(collection, id), nil, nil)
}

func collectionPath(collection string) string {
	return "/" + url.PathEscape(collection)
}

func itemPath(collection string, id int64) string {
	return collectionPath(collection) + "/" + strconv.FormatInt(id, 10)
}

package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/httpclient"
)

// Requester centralizes the request lifecycle against the resource API:
// building the URL, JSON encoding, execution through httpclient.Client,
// status checking, error translation and JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do sends method to base URL + path. reqBody, when non-nil, is sent as
// JSON; respBody, when non-nil, receives the decoded response. Any 2xx status
// is a success, and an empty success body leaves respBody untouched.
//
// With no base URL configured Do returns domain.ErrNotConfigured without
// touching the network.
func (r *Requester) Do(ctx context.Context, method, path string, reqBody, respBody any) error {
	base := r.client.BaseURL()
	if base == "" {
		return domain.ErrNotConfigured
	}

	var body io.Reader = http.NoBody
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, base+path, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(req, respBody)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// Name returns the downstream service name of the underlying client.
func (r *Requester) Name() string {
	return r.client.Name()
}

// CircuitBreakerState returns the breaker state of the underlying client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

// closeBody closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil {
		// Retries exhausted on a retryable status still hand back the
		// response; its body carries the best error detail.
		if resp != nil && !isSuccess(resp.StatusCode) {
			return r.failed(req, resp)
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}

	if !isSuccess(resp.StatusCode) {
		return r.failed(req, resp)
	}

	if respBody == nil {
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(respBody); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}

	return nil
}

func (r *Requester) failed(req *http.Request, resp *http.Response) error {
	translated := TranslateHTTPError(resp)
	r.logger.ErrorContext(req.Context(), "unexpected status",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("status", resp.StatusCode),
		slog.String("detail", translated.Error()),
	)
	return translated
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

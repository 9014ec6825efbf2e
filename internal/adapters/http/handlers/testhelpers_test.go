package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/disaster-response-web/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/disaster-response-web/internal/adapters/http/views"
	"github.com/jsamuelsen11/disaster-response-web/internal/app"
	"github.com/jsamuelsen11/disaster-response-web/mocks"
)

const testRedirectDelay = 2 * time.Second

// pageFixture wires a PageHandler to mocks and the embedded templates.
type pageFixture struct {
	svc       *mocks.MockResourceService
	dashboard *mocks.MockDashboardService
	handler   *handlers.PageHandler
}

func newPageFixture(t *testing.T, configured bool) *pageFixture {
	t.Helper()

	renderer, err := views.New()
	require.NoError(t, err)

	f := &pageFixture{
		svc:       mocks.NewMockResourceService(t),
		dashboard: mocks.NewMockDashboardService(t),
	}
	f.handler = handlers.NewPageHandler(handlers.PageDeps{
		Service:   f.svc,
		Dashboard: f.dashboard,
		Forms: app.FormDeps{
			Configured:    configured,
			RedirectDelay: testRedirectDelay,
		},
		Views:    renderer,
		PageSize: 10,
	})
	return f
}

// apiError mimics a failed API response carrying a resolved detail.
type apiError struct {
	detail string
	cause  error
}

func (e *apiError) Error() string  { return e.detail }
func (e *apiError) Detail() string { return e.detail }
func (e *apiError) Unwrap() error  { return e.cause }

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func getRequest(target string, params map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	return withChiParams(req, params)
}

func postForm(target string, params map[string]string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return withChiParams(req, params)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

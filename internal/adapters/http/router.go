// Package http provides the inbound HTTP adapter: routing, server lifecycle,
// page handlers and middleware.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/disaster-response-web/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	pages *handlers.PageHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(pages.NotFound)

	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Get("/", pages.Home)
	r.Get("/integrantes", pages.Team)

	// Resource pages. Unknown {resource} slugs render the 404 page.
	r.Get("/{resource}", pages.List)
	r.Get("/{resource}/novo", pages.NewForm)
	r.Post("/{resource}/novo", pages.Create)
	r.Get("/{resource}/editar/{id}", pages.EditForm)
	r.Post("/{resource}/editar/{id}", pages.Update)
	r.Post("/{resource}/{id}/excluir", pages.Delete)

	return r
}

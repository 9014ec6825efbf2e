// Package handlers provides the HTTP handlers: server-rendered resource
// pages and the JSON health endpoints.
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/disaster-response-web/internal/adapters/http/views"
	"github.com/jsamuelsen11/disaster-response-web/internal/app"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/form"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/resource"
	"github.com/jsamuelsen11/disaster-response-web/internal/ports"
)

// PageDeps are the collaborators of PageHandler.
type PageDeps struct {
	Service   ports.ResourceService
	Dashboard ports.DashboardService
	Forms     app.FormDeps
	Views     Renderer
	PageSize  int
	Logger    *slog.Logger
}

// PageHandler serves the dashboard, list, form and delete endpoints of every
// resource. The resource is taken from the {resource} URL parameter.
type PageHandler struct {
	deps PageDeps
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(deps PageDeps) *PageHandler {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Forms.Logger == nil {
		deps.Forms.Logger = deps.Logger
	}
	if deps.Forms.Service == nil {
		deps.Forms.Service = deps.Service
	}
	return &PageHandler{deps: deps}
}

// Home handles GET /.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	summaries := h.deps.Dashboard.Summary(r.Context())

	tiles := make([]views.Tile, 0, len(summaries))
	for _, s := range summaries {
		tile := views.Tile{
			Label: s.Resource.Plural,
			Path:  s.Resource.Path(),
			Count: s.Count,
		}
		if !s.Resource.ReadOnly() {
			tile.NewPath = s.Resource.NewPath()
		}
		if s.Err != nil {
			tile.Error = app.ListErrorMessage(s.Resource, s.Err)
		}
		tiles = append(tiles, tile)
	}

	render(w, r, h.deps.Views, http.StatusOK, views.PageDashboard, views.DashboardPage{
		Layout: layout(nil, "Painel"),
		Tiles:  tiles,
	})
}

// Team handles GET /integrantes, the static "Sobre a Equipe" page.
func (h *PageHandler) Team(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.deps.Views, http.StatusOK, views.PageTeam, views.TeamPage{
		Layout:  layout(nil, "Sobre a Equipe"),
		Members: views.Team,
	})
}

// List handles GET /{resource}. It always requests the first page.
func (h *PageHandler) List(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}

	page := views.ListPage{
		Layout:  layout(res, res.Plural),
		Heading: res.ListTitle,
		Empty:   res.EmptyMessage,
	}
	page.Layout.Flash = flashFrom(r)
	if !res.ReadOnly() {
		page.NewPath = res.NewPath()
		page.NewLabel = res.CreateTitle
	}
	for _, c := range res.Columns {
		page.Columns = append(page.Columns, c.Label)
	}

	records, err := h.deps.Service.List(r.Context(), res, 0, h.deps.PageSize)
	if err != nil {
		page.Error = app.ListErrorMessage(res, err)
		render(w, r, h.deps.Views, statusFor(err, http.StatusBadGateway), views.PageList, page)
		return
	}

	page.Rows = make([]views.Row, 0, len(records))
	for _, rec := range records {
		row := views.Row{Cells: make([]string, 0, len(res.Columns))}
		for _, c := range res.Columns {
			row.Cells = append(row.Cells, c.Render(rec))
		}
		if id, ok := res.RecordID(rec); ok && !res.ReadOnly() {
			row.ID = id
			row.EditPath = res.EditPath(id)
			row.DeletePath = res.DeletePath(id)
			row.ConfirmText = res.ConfirmDeleteMessage(id)
		}
		page.Rows = append(page.Rows, row)
	}

	render(w, r, h.deps.Views, http.StatusOK, views.PageList, page)
}

// Delete handles POST /{resource}/{id}/excluir and redirects back to the
// list with a flash message.
func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}

	id, ok := form.ParseID(chi.URLParam(r, "id"))
	if !ok {
		flashRedirect(w, r, res.Path(), views.FlashError, res.InvalidIDMessage())
		return
	}

	if err := h.deps.Service.Delete(r.Context(), res, id); err != nil {
		flashRedirect(w, r, res.Path(), views.FlashError, app.DeleteErrorMessage(res, err))
		return
	}
	flashRedirect(w, r, res.Path(), views.FlashSuccess, res.DeletedMessage(id))
}

// NotFound renders the 404 page for unknown paths.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound, "Página não encontrada",
		"O endereço solicitado não existe.")
}

// InternalError renders the 500 page. The recovery middleware uses it after
// a panic.
func (h *PageHandler) InternalError(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusInternalServerError, "Erro interno",
		"Ocorreu um erro inesperado. Tente novamente em instantes.")
}

// GatewayTimeout renders the 504 page shown when a request outlives the
// server deadline, typically because the resource API is slow.
func (h *PageHandler) GatewayTimeout(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusGatewayTimeout, "Tempo esgotado",
		"O servidor demorou demais para responder. Tente novamente.")
}

// resource resolves the {resource} URL parameter, rendering a 404 page when
// it names no known collection.
func (h *PageHandler) resource(w http.ResponseWriter, r *http.Request) (*resource.Resource, bool) {
	slug := chi.URLParam(r, "resource")
	res, ok := resource.Lookup(slug)
	if !ok {
		h.renderError(w, r, http.StatusNotFound, "Página não encontrada",
			fmt.Sprintf("O recurso %q não existe.", slug))
		return nil, false
	}
	return res, true
}

func (h *PageHandler) renderError(w http.ResponseWriter, r *http.Request, status int, heading, msg string) {
	render(w, r, h.deps.Views, status, views.PageError, views.ErrorPage{
		Layout:   layout(nil, heading),
		Heading:  heading,
		Message:  msg,
		BackPath: "/",
	})
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/disaster-response-web/internal/adapters/http/views"
	"github.com/jsamuelsen11/disaster-response-web/internal/app"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/form"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/resource"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/logging"
)

// NewForm handles GET /{resource}/novo.
func (h *PageHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.showForm(w, r, resource.ModeCreate)
}

// Create handles POST /{resource}/novo.
func (h *PageHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.submitForm(w, r, resource.ModeCreate)
}

// EditForm handles GET /{resource}/editar/{id}.
func (h *PageHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	h.showForm(w, r, resource.ModeEdit)
}

// Update handles POST /{resource}/editar/{id}.
func (h *PageHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.submitForm(w, r, resource.ModeEdit)
}

func (h *PageHandler) showForm(w http.ResponseWriter, r *http.Request, mode resource.Mode) {
	ctrl, ok := h.controller(w, r, mode, nil)
	if !ok {
		return
	}

	if err := ctrl.Start(r.Context()); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "form start failed", slog.Any("error", err))
	}

	v := ctrl.View()
	status := http.StatusOK
	if v.Load == app.LoadFailed {
		status = statusFor(v.Err, http.StatusBadRequest)
	}
	h.renderForm(w, r, status, v)
}

func (h *PageHandler) submitForm(w http.ResponseWriter, r *http.Request, mode resource.Mode) {
	var nav *app.Navigation
	ctrl, ok := h.controller(w, r, mode, func(n app.Navigation) { nav = &n })
	if !ok {
		return
	}

	if err := parsePostedForm(w, r); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "Requisição inválida", "Não foi possível ler o formulário enviado.")
		return
	}
	v := ctrl.View()
	ctrl.Hydrate(form.StateFromValues(v.Resource.Schema(mode), r.PostForm))

	status := http.StatusOK
	if err := ctrl.Submit(r.Context()); err != nil {
		status = statusFor(err, http.StatusUnprocessableEntity)
		if errors.Is(err, app.ErrSubmitInFlight) {
			status = http.StatusConflict
		}
	}
	if nav != nil {
		w.Header().Set("Refresh", refreshHeader(nav.Path, nav.Delay))
	}

	v = ctrl.View()
	if v.Load == app.LoadFailed {
		status = statusFor(v.Err, http.StatusBadRequest)
	}
	h.renderForm(w, r, status, v)
}

// controller creates the FormController of one request. List-only resources
// get a 405 page.
func (h *PageHandler) controller(w http.ResponseWriter, r *http.Request, mode resource.Mode, onSuccess func(app.Navigation)) (*app.FormController, bool) {
	res, ok := h.resource(w, r)
	if !ok {
		return nil, false
	}

	ctrl, err := app.NewFormController(h.deps.Forms, res, mode, chi.URLParam(r, "id"), onSuccess)
	if errors.Is(err, domain.ErrReadOnly) {
		h.renderError(w, r, http.StatusMethodNotAllowed, res.Plural, app.MsgReadOnlyForm)
		return nil, false
	}
	if err != nil {
		h.InternalError(w, r)
		return nil, false
	}
	return ctrl, true
}

func (h *PageHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, v app.FormView) {
	res := v.Resource
	heading, submit := res.CreateTitle, "Cadastrar"
	if v.Mode == resource.ModeEdit {
		heading, submit = res.EditTitle, "Salvar Alterações"
	}

	render(w, r, h.deps.Views, status, views.PageForm, views.FormPage{
		Layout:      layout(res, heading),
		Heading:     heading,
		Action:      r.URL.Path,
		BackPath:    res.Path(),
		SubmitLabel: submit,
		Fields:      fieldViews(res.Schema(v.Mode), v.State, v.FieldErrors),
		Error:       v.Error,
		Success:     v.Success,
		LoadFailed:  v.Load == app.LoadFailed,
	})
}

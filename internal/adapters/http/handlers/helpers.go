package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jsamuelsen11/disaster-response-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/disaster-response-web/internal/adapters/http/views"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/form"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/resource"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/logging"
)

// maxFormBytes bounds a posted form body (64 KB).
const maxFormBytes = 64 << 10

// Flash query parameters set by redirects back to a list page.
const (
	flashParam     = "flash"
	flashKindParam = "flash_kind"
)

// Renderer is implemented by *views.Renderer.
type Renderer interface {
	Render(w io.Writer, page views.Page, data any) error
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// render executes page into a buffer and only then writes the status line,
// so a template failure still produces a clean 500.
func render(w http.ResponseWriter, r *http.Request, v Renderer, status int, page views.Page, data any) {
	var buf bytes.Buffer
	if err := v.Render(&buf, page, data); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render page",
			slog.String("page", string(page)),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// parsePostedForm reads a urlencoded body of at most maxFormBytes.
func parsePostedForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form: %w", err)
	}
	return nil
}

// statusFor maps a domain error to the status code of the page reporting it.
// badInput is used for validation errors, which are 400 for a malformed URL
// and 422 for a rejected submission. Unclassified failures come from the
// resource API and are reported as 502.
func statusFor(err error, badInput int) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, domain.ErrValidation) {
		return badInput
	}
	if status := dto.StatusOf(err); status != http.StatusInternalServerError {
		return status
	}
	return http.StatusBadGateway
}

// refreshHeader formats a Refresh header value navigating to path after
// delay, rounded up to whole seconds.
func refreshHeader(path string, delay time.Duration) string {
	secs := int(math.Ceil(delay.Seconds()))
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d; url=%s", secs, path)
}

// flashRedirect sends the browser to path with a one-shot message.
func flashRedirect(w http.ResponseWriter, r *http.Request, path, kind, msg string) {
	q := url.Values{}
	q.Set(flashParam, msg)
	q.Set(flashKindParam, kind)
	http.Redirect(w, r, path+"?"+q.Encode(), http.StatusSeeOther)
}

// flashFrom reads the message left by flashRedirect, if any.
func flashFrom(r *http.Request) *views.Flash {
	q := r.URL.Query()
	msg := q.Get(flashParam)
	if msg == "" {
		return nil
	}
	kind := q.Get(flashKindParam)
	if kind != views.FlashSuccess {
		kind = views.FlashError
	}
	return &views.Flash{Kind: kind, Message: msg}
}

// layout builds the shared page frame with current highlighted in the menu.
func layout(current *resource.Resource, title string) views.Layout {
	all := resource.All()
	nav := make([]views.NavItem, 0, len(all))
	for _, res := range all {
		nav = append(nav, views.NavItem{
			Label:  res.Plural,
			Path:   res.Path(),
			Active: res == current,
		})
	}
	return views.Layout{Title: title, Nav: nav}
}

// enumOptions lists the declared options of e. A current value outside them
// is appended as a selected option so that it is not silently replaced.
func enumOptions(e *form.Enum, value string) []views.OptionView {
	opts := make([]views.OptionView, 0, len(e.Options)+1)
	found := false
	for _, o := range e.Options {
		selected := !found && value != "" && strings.EqualFold(o.Value, value)
		found = found || selected
		opts = append(opts, views.OptionView{Value: o.Value, Label: o.Label, Selected: selected})
	}
	if value != "" && !found {
		opts = append(opts, views.OptionView{Value: value, Label: form.Humanize(value), Selected: true})
	}
	return opts
}

// fieldViews turns a schema and its state into form controls. Errors are
// keyed by field name; API field errors may also use the posted input name.
func fieldViews(schema *form.Schema, st *form.State, errs map[string]string) []views.FieldView {
	fields := schema.Fields()
	out := make([]views.FieldView, 0, len(fields))
	for _, f := range fields {
		fv := views.FieldView{
			Name:     f.InputName(),
			ID:       f.Name,
			Label:    f.Label,
			Type:     string(f.InputType()),
			Required: f.Kind.Required(),
			Error:    errs[f.Name],
		}
		if fv.Error == "" {
			fv.Error = errs[f.InputName()]
		}

		switch {
		case f.Kind == form.OptionalBoolean:
			fv.Checked = st.Flag(f.Name)
		case f.Kind.IsAssociation():
			ref, _ := st.Ref(f.Name)
			fv.Value = ref.ID
			fv.Step = "1"
		default:
			fv.Value = st.Text(f.Name)
		}

		if f.Kind.IsNumber() {
			fv.Step = "1"
			if f.Number == form.Float {
				fv.Step = "any"
			}
		}

		if f.Enum != nil {
			fv.Options = enumOptions(f.Enum, fv.Value)
			if kept := st.Kept(f.Name); kept != "" {
				fv.KeptName = f.KeptInputName()
				fv.Kept = kept
			}
		}

		out = append(out, fv)
	}
	return out
}

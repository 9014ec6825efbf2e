// Package dto holds the JSON shapes the server writes outside of HTML pages:
// RFC 9457 problem documents for non-browser clients.
package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/logging"
)

// ProblemContentType is the media type of a Problem body.
const ProblemContentType = "application/problem+json"

// Problem is an RFC 9457 problem document.
type Problem struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Status   int            `json:"status"`
	Detail   string         `json:"detail,omitempty"`
	Instance string         `json:"instance,omitempty"`
	Errors   []FieldProblem `json:"errors,omitempty"`
}

// FieldProblem is one rejected form field, located as "body.<field>".
type FieldProblem struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// statuses is checked in order; the first sentinel matched wins.
var statuses = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrReadOnly, http.StatusMethodNotAllowed},
	{domain.ErrNotConfigured, http.StatusServiceUnavailable},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// StatusOf maps a domain error to an HTTP status code, 500 when it matches
// no domain sentinel.
func StatusOf(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.sentinel) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// NewProblem describes err for the request r. Detail carries the text of a
// domain.Detailed error or of a sentinel; a 500 never exposes its cause.
func NewProblem(r *http.Request, err error) Problem {
	status := StatusOf(err)
	p := Problem{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.RequestURI,
	}

	switch detail, ok := domain.DetailOf(err); {
	case ok:
		p.Detail = detail
	case status != http.StatusInternalServerError:
		p.Detail = err.Error()
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, field := range slices.Sorted(maps.Keys(verr.Fields)) {
			p.Errors = append(p.Errors, FieldProblem{Location: "body." + field, Message: verr.Fields[field]})
		}
	}
	return p
}

// WriteProblem answers r with the problem document for err.
func WriteProblem(w http.ResponseWriter, r *http.Request, err error) {
	p := NewProblem(r, err)

	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(p.Status)
	if encErr := json.NewEncoder(w).Encode(p); encErr != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing problem document",
			slog.Int("status", p.Status),
			slog.Any("error", encErr),
		)
	}
}

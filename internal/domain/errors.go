package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinels matched with errors.Is across the layers.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")

	// ErrNotConfigured is returned before any network call when the API base
	// URL is missing from the configuration.
	ErrNotConfigured = errors.New("api base url not configured")

	// ErrReadOnly is returned for write operations on list-only resources.
	ErrReadOnly = errors.New("resource is read-only")
)

// Field-level validation messages shown next to form inputs.
const (
	MsgRequired      = "é obrigatório"
	MsgInvalidNumber = "deve ser um número válido"
	MsgInvalidID     = "deve ser um ID válido maior que zero"
	MsgInvalidOption = "não é uma opção válida"
)

// ValidationError maps form field names to the message shown beside each
// rejected input. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Detailed is implemented by errors carrying a message that may be shown to
// users as is, such as the detail resolved from a failed API response.
type Detailed interface {
	error
	Detail() string
}

// DetailOf returns the user-facing detail of err and whether err carries one.
func DetailOf(err error) (string, bool) {
	var d Detailed
	if errors.As(err, &d) {
		return d.Detail(), true
	}
	return "", false
}

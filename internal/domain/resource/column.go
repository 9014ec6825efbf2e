package resource

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/form"
)

// Format selects how a list cell is rendered.
type Format int

const (
	FormatText Format = iota
	FormatLabel
	FormatDate
	FormatDateTime
	FormatBool
)

const (
	notSpecified = "Não especificado"
	notDefined   = "Não definida"
	invalidDate  = "Data Inválida"
)

// Column is one cell of a list row.
type Column struct {
	Field  string
	Label  string
	Format Format

	// Labels maps raw values to display labels for FormatLabel. Values not in
	// the enum, and every value when Labels is nil, are humanized.
	Labels *form.Enum
}

// Render formats the column value of rec for display.
func (c Column) Render(rec domain.Record) string {
	raw := rec.Text(c.Field)
	switch c.Format {
	case FormatLabel:
		if raw == "" {
			return notSpecified
		}
		return c.Labels.Label(raw)
	case FormatDate:
		return FormatDateBR(raw)
	case FormatDateTime:
		return FormatDateTimeBR(raw)
	case FormatBool:
		if rec.Bool(c.Field) {
			return "Sim"
		}
		return "Não"
	default:
		if raw == "" {
			return notSpecified
		}
		return raw
	}
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// FormatDateBR renders an API date as DD/MM/YYYY. "YYYY-MM-DD" is rewritten
// without time zone conversion; timestamps are cut to their date; anything
// unparseable is returned unchanged.
func FormatDateBR(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return notDefined
	}
	if strings.ContainsAny(s, "<>") {
		return invalidDate
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Format("02/01/2006")
	}
	if t, ok := parseDateTime(s); ok {
		return t.Format("02/01/2006")
	}
	return s
}

// FormatDateTimeBR renders an API timestamp as DD/MM/YYYY HH:MM.
func FormatDateTimeBR(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return notDefined
	}
	if strings.ContainsAny(s, "<>") {
		return invalidDate
	}
	if t, ok := parseDateTime(s); ok {
		return t.Format("02/01/2006 15:04")
	}
	return FormatDateBR(s)
}

func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func lower(s string) string {
	return strings.ToLower(s)
}

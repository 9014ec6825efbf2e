package form

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Option is one member of a closed enumeration.
type Option struct {
	Value string
	Label string
}

// Enum is a closed set of string values with an optional default. It replaces
// free-form status/type strings so that only known values are ever submitted.
type Enum struct {
	Options []Option
	Default string
}

// NewEnum builds an Enum. def may be "" when the field has no default.
func NewEnum(def string, options ...Option) *Enum {
	return &Enum{Options: options, Default: def}
}

// Has reports whether v is one of the enum's values, ignoring case.
func (e *Enum) Has(v string) bool {
	for _, o := range e.Options {
		if strings.EqualFold(o.Value, v) {
			return true
		}
	}
	return false
}

// Label returns the display label for v. Unknown values are humanized.
func (e *Enum) Label(v string) string {
	if e != nil {
		for _, o := range e.Options {
			if strings.EqualFold(o.Value, v) {
				return o.Label
			}
		}
	}
	return Humanize(v)
}

// Humanize turns a raw snake_case value into a display string:
// "fechado_temporariamente" -> "Fechado temporariamente".
func Humanize(v string) string {
	v = strings.TrimSpace(strings.ReplaceAll(v, "_", " "))
	if v == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(v)
	return string(unicode.ToUpper(r)) + v[size:]
}

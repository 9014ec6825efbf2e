package form

import (
	"net/url"
	"strings"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
)

// StateFromValues builds a State from a posted HTML form. Association ids are
// read from "field.key" inputs. Checking an OmitWhen checkbox clears the
// association it suppresses.
func StateFromValues(schema *Schema, values url.Values) *State {
	st := NewState()
	for _, f := range schema.fields {
		switch {
		case f.Kind == OptionalBoolean:
			st.SetFlag(f.Name, checked(values.Get(f.Name)))
		case f.Kind.IsAssociation():
			st.SetRef(f.Name, f.Key, values.Get(f.InputName()))
		default:
			st.SetText(f.Name, values.Get(f.Name))
			if kept := values.Get(f.KeptInputName()); f.Enum != nil && kept != "" {
				st.Keep(f.Name, kept)
			}
		}
	}

	for _, f := range schema.fields {
		if f.OmitWhen != "" && st.Flag(f.OmitWhen) {
			st.SetRef(f.Name, f.Key, "")
		}
	}
	return st
}

// StateFromRecord hydrates a State from an entity fetched for editing.
// Missing scalar values fall back to the field default; association ids are
// read from the nested wrapper object. Enum values outside the declared
// options are kept so that an untouched form resubmits them.
func StateFromRecord(schema *Schema, rec domain.Record) *State {
	st := NewState()
	for _, f := range schema.fields {
		switch {
		case f.Kind == OptionalBoolean:
			st.SetFlag(f.Name, rec.Bool(f.Name))
		case f.Kind.IsAssociation():
			id := ""
			if nested := rec.Nested(f.Name); nested != nil {
				if n, ok := nested.Int(f.Key); ok && n > 0 {
					id = nested.Text(f.Key)
				}
			}
			st.SetRef(f.Name, f.Key, id)
		default:
			v := rec.Text(f.Name)
			if v == "" {
				v = f.DefaultValue()
			} else if f.Enum != nil && !f.Enum.Has(v) {
				st.Keep(f.Name, v)
			}
			st.SetText(f.Name, v)
		}
	}
	return st
}

func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

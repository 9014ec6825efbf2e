package form

import (
	"errors"
	"fmt"
)

// Schema is an ordered field table for one form.
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema validates the field table and builds a Schema. Field names must be
// unique and OmitWhen must reference a boolean field of the same schema.
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	var errs []error
	for _, f := range fields {
		if err := f.validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := s.index[f.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate field %q", f.Name))
			continue
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	for _, f := range s.fields {
		if f.OmitWhen == "" {
			continue
		}
		flag, ok := s.Field(f.OmitWhen)
		if !ok || flag.Kind != OptionalBoolean {
			errs = append(errs, fmt.Errorf("field %q: omit_when %q is not a boolean field", f.Name, f.OmitWhen))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid table. Intended for
// package-level field tables.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(fmt.Sprintf("form: invalid schema: %v", err))
	}
	return s
}

// Fields returns the field table in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks up a field by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Defaults returns the State a blank form starts from.
func (s *Schema) Defaults() *State {
	st := NewState()
	for _, f := range s.fields {
		switch {
		case f.Kind == OptionalBoolean:
			st.SetFlag(f.Name, f.Default == "true")
		case f.Kind.IsAssociation():
			st.SetRef(f.Name, f.Key, "")
		default:
			st.SetText(f.Name, f.DefaultValue())
		}
	}
	return st
}

package form

import (
	"math"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
)

// Payload is the JSON object sent to the downstream API. Values are string,
// int64, float64, bool or map[string]int64 (association wrappers).
type Payload map[string]any

// Normalize coerces state against schema and prunes the result. On a
// validation failure it returns a *domain.ValidationError and a nil payload.
func Normalize(schema *Schema, state *State) (Payload, error) {
	p, err := Coerce(schema, state)
	if err != nil {
		return nil, err
	}
	return Prune(schema, p), nil
}

// Coerce converts every field of state to its wire type. Omitted optional
// values are left as nil, and empty optional strings as "", for Prune to drop.
// All field errors are collected into one *domain.ValidationError.
func Coerce(schema *Schema, state *State) (Payload, error) {
	if state == nil {
		state = NewState()
	}

	out := make(Payload, len(schema.fields))
	invalid := make(map[string]string)

	for _, f := range schema.fields {
		if f.OmitWhen != "" && state.Flag(f.OmitWhen) {
			out[f.Name] = nil
			continue
		}

		switch f.Kind {
		case RequiredString:
			v := state.Text(f.Name)
			switch {
			case strings.TrimSpace(v) == "":
				invalid[f.Name] = domain.MsgRequired
			case !allowed(f, state, v):
				invalid[f.Name] = domain.MsgInvalidOption
			default:
				out[f.Name] = v
			}

		case OptionalString:
			v := state.Text(f.Name)
			if v != "" && !allowed(f, state, v) {
				invalid[f.Name] = domain.MsgInvalidOption
				continue
			}
			out[f.Name] = v

		case RequiredNumber:
			v := state.Text(f.Name)
			if strings.TrimSpace(v) == "" {
				invalid[f.Name] = domain.MsgRequired
				continue
			}
			n, ok := parseNumber(v, f.Number)
			if !ok {
				invalid[f.Name] = domain.MsgInvalidNumber
				continue
			}
			out[f.Name] = n

		case OptionalNumber:
			v := state.Text(f.Name)
			if strings.TrimSpace(v) == "" {
				out[f.Name] = nil
				continue
			}
			n, ok := parseNumber(v, f.Number)
			if !ok {
				invalid[f.Name] = domain.MsgInvalidNumber
				continue
			}
			out[f.Name] = n

		case OptionalBoolean:
			out[f.Name] = state.Flag(f.Name)

		case OptionalAssociation:
			ref, _ := state.Ref(f.Name)
			if id, ok := ParseID(ref.ID); ok {
				out[f.Name] = map[string]int64{f.Key: id}
			} else {
				out[f.Name] = nil
			}

		case RequiredAssociation:
			ref, _ := state.Ref(f.Name)
			id, ok := ParseID(ref.ID)
			if !ok {
				invalid[f.Name] = domain.MsgInvalidID
				continue
			}
			out[f.Name] = map[string]int64{f.Key: id}
		}
	}

	if len(invalid) > 0 {
		return nil, &domain.ValidationError{Fields: invalid}
	}
	return out, nil
}

// allowed reports whether v may be submitted for f. Besides the declared
// options, an enum accepts the stored value its form was loaded with.
func allowed(f Field, state *State, v string) bool {
	if f.Enum == nil || f.Enum.Has(v) {
		return true
	}
	return v == state.Kept(f.Name)
}

// Prune removes nil and empty-string values, then restores declared defaults
// for fields that were removed. Booleans are never removed. Keys that are not
// part of schema are kept when non-empty.
func Prune(schema *Schema, p Payload) Payload {
	out := make(Payload, len(p))
	for name, v := range p {
		if !isEmpty(v) {
			out[name] = v
			continue
		}
		f, ok := schema.Field(name)
		if !ok {
			continue
		}
		if d, ok := defaultFor(f); ok {
			out[name] = d
		}
	}
	return out
}

// ParseID parses a positive integer id. Blank, non-numeric, zero and negative
// input are rejected.
func ParseID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func parseNumber(s string, format NumberFormat) (any, bool) {
	s = strings.TrimSpace(s)
	if format == Int {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case map[string]int64:
		return x == nil
	default:
		return false
	}
}

// defaultFor returns the typed default restored for a pruned field.
func defaultFor(f Field) (any, bool) {
	d := f.DefaultValue()
	if d == "" {
		return nil, false
	}
	switch {
	case f.Kind == OptionalBoolean:
		return d == "true", true
	case f.Kind.IsNumber():
		return parseNumber(d, f.Number)
	case f.Kind.IsAssociation():
		return nil, false
	default:
		return d, true
	}
}

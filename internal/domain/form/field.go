// Package form implements the payload normalization shared by every create
// and edit page: string-typed form inputs are coerced into typed payload
// fields, empty optional fields are pruned, and declared defaults are
// restored before the payload is sent to the downstream API.
//
// A page is described by a Schema, an ordered table of Field descriptions.
// The user's input lives in a State, and Normalize turns a State into the
// wire Payload:
//
//	payload, err := form.Normalize(schema, state)
//	if err != nil {
//	    // *domain.ValidationError: nothing may be sent
//	}
package form

import (
	"errors"
	"fmt"
)

// Kind classifies how a field is coerced and pruned.
type Kind int

const (
	// RequiredString is always sent; empty input is a validation error.
	RequiredString Kind = iota + 1
	// RequiredNumber is always sent; empty or unparseable input is a
	// validation error.
	RequiredNumber
	// OptionalString is sent only when non-empty, or restored to its default.
	OptionalString
	// OptionalNumber is sent only when the input is non-empty.
	OptionalNumber
	// OptionalBoolean is a checkbox; false is an explicit value and is never pruned.
	OptionalBoolean
	// OptionalAssociation is sent as {key: id} only for ids greater than zero.
	OptionalAssociation
	// RequiredAssociation must carry an id greater than zero.
	RequiredAssociation
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case RequiredString:
		return "required_string"
	case RequiredNumber:
		return "required_number"
	case OptionalString:
		return "optional_string"
	case OptionalNumber:
		return "optional_number"
	case OptionalBoolean:
		return "optional_boolean"
	case OptionalAssociation:
		return "optional_association"
	case RequiredAssociation:
		return "required_association"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Required reports whether an empty value for this kind fails validation.
func (k Kind) Required() bool {
	return k == RequiredString || k == RequiredNumber || k == RequiredAssociation
}

// IsAssociation reports whether the kind is a to-one reference by id.
func (k Kind) IsAssociation() bool {
	return k == OptionalAssociation || k == RequiredAssociation
}

// IsNumber reports whether the kind carries a parsed number.
func (k Kind) IsNumber() bool {
	return k == RequiredNumber || k == OptionalNumber
}

// NumberFormat selects the parser for numeric fields.
type NumberFormat int

const (
	// Int parses base-10 integers (counts, ids).
	Int NumberFormat = iota
	// Float parses decimal numbers (coordinates, radius).
	Float
)

// Input is the HTML control used to render a field.
type Input string

const (
	InputText     Input = "text"
	InputTextarea Input = "textarea"
	InputNumber   Input = "number"
	InputSelect   Input = "select"
	InputCheckbox Input = "checkbox"
)

// Field is one row of a form's field table.
type Field struct {
	Name   string
	Label  string
	Kind   Kind
	Number NumberFormat

	// Key is the id key inside an association wrapper, e.g. "idUsuario".
	Key string

	// Default is re-applied when the field would otherwise be pruned. Enum
	// fields take their default from the enum when this is empty.
	Default string

	Enum  *Enum
	Input Input

	// OmitWhen names a boolean field. While that checkbox is checked this
	// field is dropped from the payload and its requirement is waived.
	OmitWhen string
}

// DefaultValue returns the value restored by pruning, or "".
func (f Field) DefaultValue() string {
	if f.Default != "" {
		return f.Default
	}
	if f.Enum != nil {
		return f.Enum.Default
	}
	return ""
}

// KeptInputName is the hidden input echoing a stored enum value that is not
// a declared option.
func (f Field) KeptInputName() string {
	return f.Name + ".kept"
}

// InputName is the name of the HTML control carrying this field's value.
// Association ids are posted as "field.key".
func (f Field) InputName() string {
	if f.Kind.IsAssociation() {
		return f.Name + "." + f.Key
	}
	return f.Name
}

// InputType returns the configured control, deriving one from the kind when
// none is set.
func (f Field) InputType() Input {
	if f.Input != "" {
		return f.Input
	}
	switch {
	case f.Enum != nil:
		return InputSelect
	case f.Kind == OptionalBoolean:
		return InputCheckbox
	case f.Kind.IsNumber(), f.Kind.IsAssociation():
		return InputNumber
	default:
		return InputText
	}
}

func (f Field) validate() error {
	if f.Name == "" {
		return errors.New("field name must not be empty")
	}
	if f.Kind < RequiredString || f.Kind > RequiredAssociation {
		return fmt.Errorf("field %q: unknown kind %d", f.Name, int(f.Kind))
	}
	if f.Kind.IsAssociation() && f.Key == "" {
		return fmt.Errorf("field %q: association requires a key", f.Name)
	}
	if f.Enum != nil && f.Enum.Default != "" && !f.Enum.Has(f.Enum.Default) {
		return fmt.Errorf("field %q: enum default %q is not an option", f.Name, f.Enum.Default)
	}
	return nil
}

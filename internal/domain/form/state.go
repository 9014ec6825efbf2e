package form

import "maps"

// Ref is the wrapper for a to-one association as typed by the user: the id is
// still the raw input string. Keeping the wrapper distinguishes a partially
// typed id from "no selection".
type Ref struct {
	Key string
	ID  string
}

// State is the mutable form state of one page: raw text inputs, checkbox
// flags and association refs, keyed by field name. The zero value is ready to
// use.
//
// kept holds enum values loaded from a stored record that are not declared
// options; they stay valid for that record's edit form.
type State struct {
	text  map[string]string
	flags map[string]bool
	refs  map[string]Ref
	kept  map[string]string
}

// NewState returns an empty State.
func NewState() *State {
	return &State{
		text:  make(map[string]string),
		flags: make(map[string]bool),
		refs:  make(map[string]Ref),
		kept:  make(map[string]string),
	}
}

// SetText stores the raw string input of a scalar field.
func (s *State) SetText(name, value string) {
	if s.text == nil {
		s.text = make(map[string]string)
	}
	s.text[name] = value
}

// Text returns the raw string input of a scalar field.
func (s *State) Text(name string) string {
	return s.text[name]
}

// SetFlag stores a checkbox value.
func (s *State) SetFlag(name string, checked bool) {
	if s.flags == nil {
		s.flags = make(map[string]bool)
	}
	s.flags[name] = checked
}

// Flag returns a checkbox value; unknown names are unchecked.
func (s *State) Flag(name string) bool {
	return s.flags[name]
}

// SetRef stores the id string typed for an association.
func (s *State) SetRef(name, key, id string) {
	if s.refs == nil {
		s.refs = make(map[string]Ref)
	}
	s.refs[name] = Ref{Key: key, ID: id}
}

// Ref returns the association wrapper for name.
func (s *State) Ref(name string) (Ref, bool) {
	r, ok := s.refs[name]
	return r, ok
}

// Keep records the stored value of an enum field so that Coerce accepts it
// even when it is not one of the declared options.
func (s *State) Keep(name, value string) {
	if s.kept == nil {
		s.kept = make(map[string]string)
	}
	s.kept[name] = value
}

// Kept returns the stored enum value recorded by Keep, or "".
func (s *State) Kept(name string) string {
	return s.kept[name]
}

// Clone returns a deep copy. Cloning a nil State yields an empty one.
func (s *State) Clone() *State {
	if s == nil {
		return NewState()
	}
	return &State{
		text:  maps.Clone(s.text),
		flags: maps.Clone(s.flags),
		refs:  maps.Clone(s.refs),
		kept:  maps.Clone(s.kept),
	}
}

package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is a single entity object as returned by the downstream API. Records
// are kept as decoded JSON objects because every resource is described by a
// field table rather than a Go struct. Numbers are expected to be decoded as
// json.Number, but float64 values are tolerated.
type Record map[string]any

// Text returns the value of key rendered as a string. Missing and null values
// yield "".
func (r Record) Text(key string) string {
	return ScalarText(r[key])
}

// Int returns the value of key as an int64. The boolean is false when the key
// is missing or does not hold an integral number.
func (r Record) Int(key string) (int64, bool) {
	return ScalarInt(r[key])
}

// Bool returns the value of key as a bool; anything but a JSON true is false.
func (r Record) Bool(key string) bool {
	b, ok := r[key].(bool)
	return ok && b
}

// Nested returns the object stored under key, or nil.
func (r Record) Nested(key string) Record {
	switch v := r[key].(type) {
	case map[string]any:
		return Record(v)
	case Record:
		return v
	default:
		return nil
	}
}

// ScalarText renders a decoded JSON scalar as a string.
func ScalarText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// ScalarInt converts a decoded JSON scalar to an int64.
func ScalarInt(v any) (int64, bool) {
	switch x := v.(type) {
	case json.Number:
		n, err := x.Int64()
		return n, err == nil
	case float64:
		n := int64(x)
		return n, float64(n) == x
	case int:
		return int64(x), true
	case int64:
		return x, true
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

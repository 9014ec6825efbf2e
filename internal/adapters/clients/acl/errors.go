// Package acl is the outbound side of the front-end: it speaks REST to the
// resource API, keeps its wire shapes out of the app layer and turns failed
// responses into domain errors carrying a human-readable detail.
package acl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
)

const (
	// maxErrorBodySize limits how much of an error response body we read.
	maxErrorBodySize = 1 << 20 // 1 MB

	// maxTextDetail is the exclusive upper bound, in characters, for a plain
	// text body to be shown as the error detail.
	maxTextDetail = 500
)

var textPolicy = bluemonday.StrictPolicy()

// APIError is a non-2xx response from the resource API.
type APIError struct {
	StatusCode int
	Message    string
}

var _ domain.Detailed = (*APIError)(nil)

func (e *APIError) Error() string {
	return e.Message
}

// Detail returns the resolved, user-facing description of the failure.
func (e *APIError) Detail() string {
	return e.Message
}

// Unwrap maps the status class to a domain sentinel so callers can use
// errors.Is without knowing HTTP.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case e.StatusCode == http.StatusConflict:
		return domain.ErrConflict
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return domain.ErrForbidden
	case e.StatusCode >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return nil
	}
}

// problemDetail is the subset of an RFC 7807 body carrying field errors.
type problemDetail struct {
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError reads the body of a failed response once and maps it to
// an error. RFC 7807 bodies with field errors on 400/422 become a
// *domain.ValidationError; everything else is an *APIError whose detail comes
// from ResolveErrorDetail.
func TranslateHTTPError(resp *http.Response) error {
	var body []byte
	if resp.Body != nil {
		// A failed read leaves whatever was buffered; the chain copes with a
		// partial or empty body.
		body, _ = io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	}

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity {
		if verr := toValidationError(resp.Header.Get("Content-Type"), body); verr != nil {
			return verr
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    ResolveErrorDetail(resp.StatusCode, statusText(resp), body),
	}
}

// ResolveErrorDetail picks the best human-readable description of a failed
// response, stopping at the first rule that yields something:
//
//  1. a JSON object with a non-empty string "message" field;
//  2. a non-empty JSON string;
//  3. any other non-empty JSON object or array, compacted;
//  4. a non-JSON body that is non-blank and shorter than 500 characters,
//     with markup stripped;
//  5. "Status <code>: <statusText>".
func ResolveErrorDetail(status int, statusText string, body []byte) string {
	if d, ok := jsonDetail(body); ok {
		return d
	}
	if d, ok := textDetail(body); ok {
		return d
	}
	return fmt.Sprintf("Status %d: %s", status, statusText)
}

func jsonDetail(body []byte) (string, bool) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return "", false
	}

	switch t := v.(type) {
	case map[string]any:
		if msg, ok := t["message"].(string); ok && msg != "" {
			return msg, true
		}
		if len(t) == 0 {
			return "", false
		}
	case []any:
		if len(t) == 0 {
			return "", false
		}
	case string:
		return t, t != ""
	default:
		// Bare numbers, booleans and null carry no message.
		return "", false
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return "", false
	}
	return buf.String(), true
}

func textDetail(body []byte) (string, bool) {
	// Valid JSON that produced nothing must not be reread as text.
	if json.Valid(body) {
		return "", false
	}
	text := strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(string(body))))
	if text == "" || utf8.RuneCountInString(text) >= maxTextDetail {
		return "", false
	}
	return text, true
}

// statusText returns the reason phrase of resp, e.g. "Not Found".
func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

// toValidationError converts RFC 7807 field errors to a domain
// ValidationError, stripping the "body." location prefix. It returns nil when
// the body is not a problem document or lists no field errors.
func toValidationError(contentType string, body []byte) *domain.ValidationError {
	if !strings.HasPrefix(contentType, "application/problem+json") {
		return nil
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil || len(pd.Errors) == 0 {
		return nil
	}

	fields := make(map[string]string, len(pd.Errors))
	for _, d := range pd.Errors {
		fields[strings.TrimPrefix(d.Location, "body.")] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}

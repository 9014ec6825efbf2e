package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/disaster-response-web/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders converts headers into slog attributes sorted by name.
// Sensitive values are replaced with "[REDACTED]" and multi-value headers are
// joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		if logging.SensitiveHeader(k) {
			attrs = append(attrs, slog.String(k, redacted))
			continue
		}
		attrs = append(attrs, slog.String(k, strings.Join(headers[k], ",")))
	}
	return attrs
}

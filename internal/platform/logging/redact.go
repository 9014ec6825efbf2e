package logging

import (
	"log/slog"
	"net/http"
	"net/url"
	"regexp"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders are canonical names of headers carrying credentials or
// session state.
var sensitiveHeaders = map[string]struct{}{
	"Authorization":       {},
	"Proxy-Authorization": {},
	"Cookie":              {},
	"Set-Cookie":          {},
	"X-Api-Key":           {},
}

// SensitiveHeader reports whether the value of header name must not be
// logged. The comparison ignores case.
func SensitiveHeader(name string) bool {
	_, ok := sensitiveHeaders[http.CanonicalHeaderKey(name)]
	return ok
}

// RedactURL hides the password of a URL's userinfo. Unparseable input is
// replaced entirely since it cannot be inspected.
func RedactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "[REDACTED]"
	}
	return u.Redacted()
}

// Attribute keys masked wherever they appear, including nested groups and
// struct fields. Citizen reports and user references can carry personal
// contact data.
var sensitiveFields = []string{
	"authorization",
	"cookie",
	"x-api-key",
	"password",
	"senha",
	"secret",
	"token",
	"cpf",
	"emailUsuario",
	"contatoResponsavelAbrigo",
}

// Phone numbers appear under several keys: telefone, telefoneContato,
// telefoneContatoAbrigo.
var sensitivePrefixes = []string{"secret_", "api_key", "token_", "telefone"}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// Three base64url segments of at least 10 characters each; shorter
	// dotted strings such as versions are left alone.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

	// Formatted Brazilian taxpayer id, 123.456.789-09.
	cpfPattern = regexp.MustCompile(`\b\d{3}\.\d{3}\.\d{3}-\d{2}\b`)
)

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveFields)+len(sensitivePrefixes)+4)
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	opts = append(opts,
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
		masq.WithRegex(cpfPattern),
	)
	return masq.New(opts...)
}

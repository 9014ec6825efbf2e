package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
)

func TestResolveErrorDetail(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 500)

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "message field wins",
			body: `{"message":"Abrigo não encontrado","error":"Not Found"}`,
			want: "Abrigo não encontrado",
		},
		{
			name: "empty message field is serialized",
			body: `{"message": ""}`,
			want: `{"message":""}`,
		},
		{
			name: "json string",
			body: `"Campo obrigatório ausente"`,
			want: "Campo obrigatório ausente",
		},
		{
			name: "empty json string falls back to status",
			body: `""`,
			want: "Status 400: Bad Request",
		},
		{
			name: "object without message is serialized",
			body: "{\n  \"error\": \"bad\",\n  \"code\": 7\n}",
			want: `{"error":"bad","code":7}`,
		},
		{
			name: "non-string message is serialized",
			body: `{"message":42}`,
			want: `{"message":42}`,
		},
		{
			name: "empty object falls back to status",
			body: `{}`,
			want: "Status 400: Bad Request",
		},
		{
			name: "json number does not fall through to text",
			body: `42`,
			want: "Status 400: Bad Request",
		},
		{
			name: "plain text",
			body: "latitude fora do intervalo",
			want: "latitude fora do intervalo",
		},
		{
			name: "html is stripped",
			body: "<html><body><h1>Bad &amp; wrong</h1></body></html>",
			want: "Bad & wrong",
		},
		{
			name: "markup only falls back to status",
			body: "<br/>  <hr>",
			want: "Status 400: Bad Request",
		},
		{
			name: "text of 500 characters is too long",
			body: long,
			want: "Status 400: Bad Request",
		},
		{
			name: "text of 499 characters is kept",
			body: long[:499],
			want: long[:499],
		},
		{
			name: "blank body",
			body: "   \n",
			want: "Status 400: Bad Request",
		},
		{
			name: "empty body",
			body: "",
			want: "Status 400: Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveErrorDetail(http.StatusBadRequest, "Bad Request", []byte(tt.body))
			if got != tt.want {
				t.Errorf("ResolveErrorDetail() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{name: "404 maps to ErrNotFound", statusCode: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "400 maps to ErrValidation", statusCode: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{name: "422 maps to ErrValidation", statusCode: http.StatusUnprocessableEntity, wantErr: domain.ErrValidation},
		{name: "409 maps to ErrConflict", statusCode: http.StatusConflict, wantErr: domain.ErrConflict},
		{name: "401 maps to ErrForbidden", statusCode: http.StatusUnauthorized, wantErr: domain.ErrForbidden},
		{name: "403 maps to ErrForbidden", statusCode: http.StatusForbidden, wantErr: domain.ErrForbidden},
		{name: "500 maps to ErrUnavailable", statusCode: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{name: "503 maps to ErrUnavailable", statusCode: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp := &http.Response{
				StatusCode: tt.statusCode,
				Header:     http.Header{},
				Body:       http.NoBody,
			}

			got := TranslateHTTPError(resp)

			if !errors.Is(got, tt.wantErr) {
				t.Errorf("TranslateHTTPError() = %v, want errors.Is %v", got, tt.wantErr)
			}
			var apiErr *APIError
			if !errors.As(got, &apiErr) || apiErr.StatusCode != tt.statusCode {
				t.Errorf("TranslateHTTPError() = %#v, want *APIError with status %d", got, tt.statusCode)
			}
		})
	}
}

func TestTranslateHTTPError_DetailFromStatusLine(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusInternalServerError,
		Status:     "500 Erro Interno",
		Header:     http.Header{},
		Body:       http.NoBody,
	}

	got := TranslateHTTPError(resp)
	if got.Error() != "Status 500: Erro Interno" {
		t.Errorf("error = %q, want %q", got.Error(), "Status 500: Erro Interno")
	}

	resp.Status = ""
	resp.Body = http.NoBody
	if got := TranslateHTTPError(resp).Error(); got != "Status 500: Internal Server Error" {
		t.Errorf("error = %q, want standard reason phrase", got)
	}
}

func TestTranslateHTTPError_BodyReadOnce(t *testing.T) {
	t.Parallel()

	body := &countingReader{r: strings.NewReader(`{"message":"Vagas insuficientes"}`)}
	resp := &http.Response{
		StatusCode: http.StatusConflict,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(body),
	}

	got := TranslateHTTPError(resp)

	if got.Error() != "Vagas insuficientes" {
		t.Errorf("error = %q, want %q", got.Error(), "Vagas insuficientes")
	}
	if !errors.Is(got, domain.ErrConflict) {
		t.Errorf("error is not ErrConflict: %v", got)
	}
	if body.eofs != 1 {
		t.Errorf("body drained %d times, want 1", body.eofs)
	}
}

func TestTranslateHTTPError_ValidationErrorWithDetails(t *testing.T) {
	t.Parallel()

	body := `{
		"type": "about:blank",
		"title": "Bad Request",
		"status": 400,
		"detail": "validation failed",
		"errors": [
			{"location": "body.nomeAbrigo", "message": "é obrigatório"},
			{"location": "body.latitudeAbrigo", "message": "deve ser um número válido"}
		]
	}`

	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Header:     http.Header{"Content-Type": []string{"application/problem+json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}

	got := TranslateHTTPError(resp)

	if !errors.Is(got, domain.ErrValidation) {
		t.Fatalf("error is not ErrValidation: %v", got)
	}

	var verr *domain.ValidationError
	if !errors.As(got, &verr) {
		t.Fatalf("error is not *ValidationError: %v", got)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("len(Fields) = %d, want 2", len(verr.Fields))
	}
	if verr.Fields["nomeAbrigo"] != "é obrigatório" {
		t.Errorf("Fields[nomeAbrigo] = %q", verr.Fields["nomeAbrigo"])
	}
	if verr.Fields["latitudeAbrigo"] != "deve ser um número válido" {
		t.Errorf("Fields[latitudeAbrigo] = %q", verr.Fields["latitudeAbrigo"])
	}
}

func TestTranslateHTTPError_ProblemWithoutFieldErrors(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusUnprocessableEntity,
		Header:     http.Header{"Content-Type": []string{"application/problem+json"}},
		Body:       io.NopCloser(strings.NewReader(`{"title":"Unprocessable","errors":[]}`)),
	}

	got := TranslateHTTPError(resp)

	var verr *domain.ValidationError
	if errors.As(got, &verr) {
		t.Fatalf("error = %v, want *APIError without field errors", got)
	}
	if got.Error() != `{"title":"Unprocessable","errors":[]}` {
		t.Errorf("error = %q", got.Error())
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusTeapot,
		Header:     http.Header{},
		Body:       http.NoBody,
	}

	got := TranslateHTTPError(resp)

	for _, sentinel := range []error{
		domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict,
		domain.ErrForbidden, domain.ErrUnavailable,
	} {
		if errors.Is(got, sentinel) {
			t.Errorf("unexpected status matched %v", sentinel)
		}
	}
	if !strings.Contains(got.Error(), "418") {
		t.Errorf("error = %q, want status code 418 in message", got.Error())
	}
}

func TestTranslateHTTPError_NilBody(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusNotFound,
		Header:     http.Header{"Content-Type": []string{"application/problem+json"}},
		Body:       nil,
	}

	got := TranslateHTTPError(resp)

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("error is not ErrNotFound: %v", got)
	}
}

// countingReader counts how many times the underlying stream reached EOF.
type countingReader struct {
	r    io.Reader
	eofs int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if errors.Is(err, io.EOF) {
		c.eofs++
	}
	return n, err
}

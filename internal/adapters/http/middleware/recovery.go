package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/jsamuelsen11/disaster-response-web/internal/adapters/http/dto"
)

// errInternalServer is the only detail a client sees after a panic.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that recovers from panics in downstream
// handlers and logs the value with the stack trace.
//
// Browsers (Accept: text/html) get the page handler when it is non-nil; every
// other client gets an RFC 9457 500 response. Nothing is written once the
// handler has already sent headers.
func Recovery(logger *slog.Logger, page http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if rw.committed {
					return
				}
				if page != nil && wantsHTML(r) {
					page.ServeHTTP(rw, r)
					return
				}
				dto.WriteProblem(rw, r, errInternalServer)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

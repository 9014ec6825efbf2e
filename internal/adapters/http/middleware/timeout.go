package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"
)

// Timeout bounds each request by d. The page handler runs on its own
// goroutine against a buffered writer; whichever finishes first, the handler
// or the deadline, writes the real response. A panic in the handler is
// re-raised on the request goroutine so Recovery sees it.
//
// When the deadline wins, browsers get page (if non-nil) and everyone else
// a bare 504. Later writes by the handler fail with http.ErrHandlerTimeout.
func Timeout(d time.Duration, page http.Handler) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			finished := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(finished)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-finished:
				bw.copyTo(w)
			case <-ctx.Done():
				bw.expire()
				if page != nil && wantsHTML(r) {
					page.ServeHTTP(w, r)
					return
				}
				w.WriteHeader(http.StatusGatewayTimeout)
			}
		})
	}
}

// bufferedWriter holds a page response until Timeout decides its fate.
type bufferedWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	expired bool
}

// Header is only safe to use from the handler goroutine, like any
// ResponseWriter header map.
func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.status == 0 && !bw.expired {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	return bw.body.Write(b)
}

func (bw *bufferedWriter) expire() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.expired = true
}

// copyTo replays the buffered response onto w. Only called after the
// handler returned.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if bw.body.Len() > 0 {
		_, _ = w.Write(bw.body.Bytes())
	}
}

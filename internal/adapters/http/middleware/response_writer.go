// Package middleware is the inbound pipeline shared by pages and probes.
// Stack assembles it in this order, outermost first:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout
package middleware

import "net/http"

// statusRecorder remembers the status and body size of a response on its way
// out. A handler that writes without calling WriteHeader gets 200.
type statusRecorder struct {
	http.ResponseWriter
	status    int
	committed bool
	bytes     int64
}

func newResponseWriter(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status only.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.committed {
		return
	}
	sr.status = code
	sr.committed = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.committed = true
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Flush pushes buffered bytes to the client when the wrapped writer allows it.
func (sr *statusRecorder) Flush() {
	sr.committed = true
	_ = http.NewResponseController(sr.ResponseWriter).Flush()
}

// Unwrap lets http.ResponseController reach the wrapped writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

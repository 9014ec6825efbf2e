package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/disaster-response-web/internal/ports"
)

// Probe states reported in the "status" field.
const (
	ProbeOK       = "ok"
	ProbeReady    = "ready"
	ProbeDegraded = "degraded"
	ProbeNotReady = "not_ready"
)

// Readiness is the body of GET /health/ready. Checks maps each dependency to
// "ok" or the text of its failure.
type Readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler serves the liveness and readiness probes.
//
// Pages keep working while the resource API is down, each showing its own
// error message, so a failing check only degrades readiness unless strict
// mode turns it into a 503.
type HealthHandler struct {
	registry ports.HealthRegistry
	strict   bool
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithStrictReadiness makes failing checks answer 503.
func WithStrictReadiness(strict bool) HealthOption {
	return func(h *HealthHandler) { h.strict = strict }
}

// NewHealthHandler creates a HealthHandler reading from registry.
func NewHealthHandler(registry ports.HealthRegistry, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{registry: registry}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": ProbeOK})
}

// Readiness handles GET /health/ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report, healthy := h.report(r)

	code := http.StatusOK
	if !healthy && h.strict {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, report)
}

func (h *HealthHandler) report(r *http.Request) (Readiness, bool) {
	results := h.registry.CheckAll(r.Context())

	report := Readiness{Status: ProbeReady, Checks: make(map[string]string, len(results))}
	healthy := true
	for name, err := range results {
		if err == nil {
			report.Checks[name] = ProbeOK
			continue
		}
		report.Checks[name] = err.Error()
		healthy = false
	}

	if !healthy {
		report.Status = ProbeDegraded
		if h.strict {
			report.Status = ProbeNotReady
		}
	}
	return report, healthy
}

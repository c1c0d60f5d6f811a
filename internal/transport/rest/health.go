package rest

import (
	"context"
	"net/http"
	"time"
)

const checkTimeout = 3 * time.Second

type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and health probes.
type HealthHandler struct {
	store   storePinger
	driver  string
	version string
	started time.Time
}

func NewHealthHandler(store storePinger, driver, version string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver, version: version, started: time.Now()}
}

// HealthResponse is the JSON response for the probes.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Driver  string `json:"driver,omitempty"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready returns 200 when the store answers a ping and 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status := h.checkStore(r.Context()).Status
	writeJSON(w, statusCode(status), HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health adds the store component, the build version and the uptime. Ping
// errors are reported only here, never on /ready.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	comp := h.checkStore(r.Context())
	writeJSON(w, statusCode(comp.Status), HealthResponse{
		Status:     comp.Status,
		Version:    h.version,
		Uptime:     time.Since(h.started).Truncate(time.Second).String(),
		Components: map[string]CompStatus{"store": comp},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) checkStore(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	if err := h.store.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Driver: h.driver, Error: err.Error()}
	}
	return CompStatus{Status: "ok", Driver: h.driver, Latency: time.Since(start).String()}
}

func statusCode(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

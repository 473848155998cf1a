package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for store health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the health endpoints. The store is the only hard
// dependency: no sprinkler can be controlled without it. Event delivery is
// best-effort, so a broken broker connection degrades the report without
// failing it.
type HealthHandler struct {
	db              dbPinger
	eventsConnected func() bool // nil when event publishing is disabled
	version         string
}

// NewHealthHandler creates a HealthHandler. eventsConnected probes the state
// of the MQTT broker connection; pass nil when no broker is configured.
func NewHealthHandler(db dbPinger, eventsConnected func() bool, version string) *HealthHandler {
	return &HealthHandler{db: db, eventsConnected: eventsConnected, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus is the health of one dependency.
type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the store: 200 if OK, 503 if not.
// The event broker is deliberately not part of readiness.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full report: store ping with latency, event broker
// connection state and the build version. A dead store means "down" (503);
// a dead broker alone means "degraded" (200), since lifecycle operations
// still work and only the hardware notifications are lost.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]ComponentStatus)
	overall := "ok"

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = ComponentStatus{Status: "down"}
		overall = "down"
	} else {
		components["database"] = ComponentStatus{
			Status:  "ok",
			Latency: time.Since(start).String(),
		}
	}

	switch {
	case h.eventsConnected == nil:
		components["events"] = ComponentStatus{Status: "disabled"}
	case h.eventsConnected():
		components["events"] = ComponentStatus{Status: "ok"}
	default:
		components["events"] = ComponentStatus{Status: "down"}
		if overall == "ok" {
			overall = "degraded"
		}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

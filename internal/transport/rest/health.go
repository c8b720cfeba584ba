package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// PipelineInfo describes how words are resolved, as reported by /health.
// An empty AIProvider means the AI tier is off and unknown words go
// straight from the dictionary to the fallback generator.
type PipelineInfo struct {
	AIProvider  string
	ActivityLog bool
}

// Tiers lists the resolution tiers in the order they are tried.
func (p PipelineInfo) Tiers() []string {
	tiers := []string{"dictionary"}
	if p.AIProvider != "" {
		tiers = append(tiers, "ai")
	}
	return append(tiers, "fallback")
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db       dbPinger
	version  string
	pipeline PipelineInfo
}

func NewHealthHandler(db dbPinger, version string, pipeline PipelineInfo) *HealthHandler {
	return &HealthHandler{db: db, version: version, pipeline: pipeline}
}

// HealthResponse is the JSON body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Tiers      []string              `json:"tiers,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 while the database is unreachable; learned words cannot
// be stored without it.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	status, code := "ok", http.StatusOK
	if db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports the database along with the resolution pipeline settings.
// A disabled AI tier is informational only: the fallback generator still
// answers every word.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{
		"database":     h.pingDB(r.Context()),
		"ai":           h.aiStatus(),
		"activity_log": switchStatus(h.pipeline.ActivityLog),
	}

	status, code := "ok", http.StatusOK
	if components["database"].Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Tiers:      h.pipeline.Tiers(),
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func (h *HealthHandler) aiStatus() CompStatus {
	if h.pipeline.AIProvider == "" {
		return CompStatus{Status: "disabled", Detail: "no api key, using fallback entries"}
	}
	return CompStatus{Status: "enabled", Detail: h.pipeline.AIProvider}
}

func switchStatus(on bool) CompStatus {
	if on {
		return CompStatus{Status: "enabled"}
	}
	return CompStatus{Status: "disabled"}
}

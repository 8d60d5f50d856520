package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/catalog14/catalog/internal/api/response"
)

// StorePinger reports connectivity of the active backend store.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	pinger  StorePinger
	backend string
	version string
}

// NewHealthHandler creates a new HealthHandler for the active store
// backend.
func NewHealthHandler(pinger StorePinger, backend, version string) *HealthHandler {
	return &HealthHandler{
		pinger:  pinger,
		backend: backend,
		version: version,
	}
}

type storeStatus struct {
	Backend   string `json:"backend"`
	Connected bool   `json:"connected"`
}

type healthData struct {
	Status  string      `json:"status"`
	Version string      `json:"version"`
	Store   storeStatus `json:"store"`
}

// ServeHTTP handles the health check request. A store outage degrades the
// report but does not fail the endpoint.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	connected := true
	if err := h.pinger.Ping(ctx); err != nil {
		status = "degraded"
		connected = false
	}

	response.JSON(w, http.StatusOK, healthData{
		Status:  status,
		Version: h.version,
		Store: storeStatus{
			Backend:   h.backend,
			Connected: connected,
		},
	})
}

package rest

import (
	"log/slog"
	"net/http"

	"github.com/MradulDixit-A/neupi-api/internal/domain/port"
)

// HealthHandler serves liveness and readiness probes over HTTP.
type HealthHandler struct {
	catalog port.CatalogRepository
	logger  *slog.Logger
}

// NewHealthHandler creates a health check HTTP handler. Readiness checks the
// catalog backend, since the service cannot recommend without a catalog.
func NewHealthHandler(catalog port.CatalogRepository, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes attaches health-check routes to the given mux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.liveness)
	mux.HandleFunc("GET /readyz", h.readiness)
}

func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "recommendation-service",
	})
}

func (h *HealthHandler) readiness(w http.ResponseWriter, r *http.Request) {
	if _, err := h.catalog.FindAll(r.Context()); err != nil {
		h.logger.WarnContext(r.Context(), "readiness check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "unavailable",
			"service": "recommendation-service",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"service": "recommendation-service",
	})
}

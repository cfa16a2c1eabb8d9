package controller

import (
	"net/http"

	"github.com/cassiomorais/codgateway/internal/plugin"
)

type HealthController struct {
	registry *plugin.Registry
}

func NewHealthController(registry *plugin.Registry) *HealthController {
	return &HealthController{registry: registry}
}

func (h *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

func (h *HealthController) Readiness(w http.ResponseWriter, r *http.Request) {
	if len(h.registry.List()) == 0 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "no plugins loaded",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

package controller

import (
	"net/http"

	"github.com/cassiomorais/codgateway/internal/infrastructure/observability"
	customMW "github.com/cassiomorais/codgateway/internal/middleware"
	"github.com/cassiomorais/codgateway/internal/plugin"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// PluginController lists loaded plugins and toggles their activation.
type PluginController struct {
	registry *plugin.Registry
	metrics  *observability.Metrics
	logger   zerolog.Logger
}

// NewPluginController creates a new PluginController.
func NewPluginController(registry *plugin.Registry, metrics *observability.Metrics, logger zerolog.Logger) *PluginController {
	return &PluginController{registry: registry, metrics: metrics, logger: logger}
}

// List handles GET /api/v1/plugins
func (h *PluginController) List(w http.ResponseWriter, r *http.Request) {
	plugins := h.registry.List()
	resp := make([]PluginResponse, 0, len(plugins))
	for _, p := range plugins {
		resp = append(resp, FromPlugin(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// SetActive handles POST /api/v1/plugins/{id}/active
func (h *PluginController) SetActive(w http.ResponseWriter, r *http.Request) {
	var req SetActiveRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.registry.SetActive(id, *req.Active); err != nil {
		writeError(w, err)
		return
	}
	h.metrics.SetActive(id, *req.Active)

	operator, _ := customMW.GetOperator(r.Context())
	h.logger.Info().
		Str("plugin", id).
		Bool("active", *req.Active).
		Str("operator", operator).
		Msg("Plugin activation changed")

	p, err := h.registry.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, FromPlugin(p))
}

package controller

import (
	"context"
	"fmt"
	"net/http"
	"time"

	domainErrors "github.com/cassiomorais/codgateway/internal/domain/errors"
	"github.com/cassiomorais/codgateway/internal/domain/gateway"
	"github.com/cassiomorais/codgateway/internal/infrastructure/observability"
	"github.com/cassiomorais/codgateway/internal/plugin"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// GatewayController exposes the payment gateway hooks of loaded plugins.
type GatewayController struct {
	registry *plugin.Registry
	metrics  *observability.Metrics
	tracer   trace.Tracer
}

// NewGatewayController creates a new GatewayController.
func NewGatewayController(registry *plugin.Registry, metrics *observability.Metrics) *GatewayController {
	return &GatewayController{
		registry: registry,
		metrics:  metrics,
		tracer:   observability.Tracer(),
	}
}

// startHook opens a span for a hook call. The returned func records the
// outcome and ends the span.
func (h *GatewayController) startHook(ctx context.Context, pluginID, hook string) func(outcome string, err error) {
	start := time.Now()
	_, span := h.tracer.Start(ctx, "plugin."+hook, trace.WithAttributes(
		attribute.String("plugin.id", pluginID),
	))

	return func(outcome string, err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.String("plugin.outcome", outcome))
		span.End()

		h.metrics.HookCalls.WithLabelValues(pluginID, hook, outcome).Inc()
		h.metrics.HookDuration.WithLabelValues(pluginID, hook).Observe(time.Since(start).Seconds())
	}
}

func (h *GatewayController) lookup(w http.ResponseWriter, r *http.Request) (plugin.PaymentGateway, bool) {
	p, err := h.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return p, true
}

// GetConfig handles GET /api/v1/gateways/{id}/config
func (h *GatewayController) GetConfig(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}

	done := h.startHook(r.Context(), p.Manifest().ID, "get_payment_config")
	config := p.GetPaymentConfig([]gateway.PaymentConfigEntry{})
	done("success", nil)

	writeJSON(w, http.StatusOK, PaymentConfigResponse{Config: config})
}

// GetCurrencies handles GET /api/v1/gateways/{id}/currencies
func (h *GatewayController) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}

	done := h.startHook(r.Context(), p.Manifest().ID, "get_supported_currencies")
	currencies := p.GetSupportedCurrencies([]string{})
	done("success", nil)

	writeJSON(w, http.StatusOK, CurrenciesResponse{Currencies: currencies})
}

// GetClientToken handles GET /api/v1/gateways/{id}/client-token
func (h *GatewayController) GetClientToken(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(w, r)
	if !ok {
		return
	}

	done := h.startHook(r.Context(), p.Manifest().ID, "get_client_token")
	resp := ClientTokenResponse{
		ClientToken:          p.GetClientToken(""),
		TokenRequiredAsInput: p.TokenIsRequiredAsPaymentInput(false),
	}
	done("success", nil)

	writeJSON(w, http.StatusOK, resp)
}

// Payment handles POST /api/v1/gateways/{id}/payments/{operation}
func (h *GatewayController) Payment(w http.ResponseWriter, r *http.Request) {
	op, err := plugin.ParseOperation(chi.URLParam(r, "operation"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req PaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	info, err := req.PaymentData()
	if err != nil {
		writeError(w, err)
		return
	}

	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	id := p.Manifest().ID

	done := h.startHook(r.Context(), id, string(op))
	if !p.IsActive() {
		err := fmt.Errorf("plugin %q: %w", id, domainErrors.ErrPluginInactive)
		done("inactive", err)
		writeError(w, err)
		return
	}

	resp, err := plugin.RunPaymentOperation(p, op, info)
	switch {
	case err != nil:
		done("error", err)
		writeError(w, err)
		return
	case resp == nil:
		// The plugin declined to handle the operation.
		err := fmt.Errorf("plugin %q: %w", id, domainErrors.ErrPluginInactive)
		done("skipped", err)
		writeError(w, err)
		return
	}
	done("success", nil)

	writeJSON(w, http.StatusOK, resp)
}

// CheckoutTotal handles POST /api/v1/gateways/{id}/checkout-total
func (h *GatewayController) CheckoutTotal(w http.ResponseWriter, r *http.Request) {
	var req CheckoutTotalRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	previous, err := req.Previous.TaxedMoney()
	if err != nil {
		writeError(w, err)
		return
	}

	p, ok := h.lookup(w, r)
	if !ok {
		return
	}
	id := p.Manifest().ID

	done := h.startHook(r.Context(), id, "calculate_checkout_total")
	total, err := p.CalculateCheckoutTotal(req.Info(), req.Lines, req.Address, req.Discounts, previous)
	if err != nil {
		done("error", err)
		h.metrics.FeeErrors.WithLabelValues(id).Inc()
		writeError(w, err)
		return
	}

	applied := !total.Equal(previous)
	if applied {
		done("applied", nil)
		h.metrics.FeesApplied.WithLabelValues(id, total.Currency()).Inc()
	} else {
		done("unchanged", nil)
	}

	writeJSON(w, http.StatusOK, CheckoutTotalResponse{
		Total:      FromTaxedMoney(total),
		FeeApplied: applied,
	})
}

package controller

import (
	"time"

	"github.com/cassiomorais/codgateway/internal/infrastructure/config"
	"github.com/cassiomorais/codgateway/internal/infrastructure/observability"
	customMW "github.com/cassiomorais/codgateway/internal/middleware"
	"github.com/cassiomorais/codgateway/internal/plugin"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type RouterDeps struct {
	Registry          *plugin.Registry
	Metrics           *observability.Metrics
	Gatherer          prometheus.Gatherer
	EnableMetrics     bool
	CORSConfig        config.CORSConfig
	JWTSecret         string
	RequestsPerMinute int
	ServiceName       string
	Logger            zerolog.Logger
}

func NewRouter(deps RouterDeps) *chi.Mux {
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(customMW.Tracing(deps.ServiceName))
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(customMW.SecurityHeaders())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSConfig.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: deps.CORSConfig.AllowCredentials,
		MaxAge:           300,
	}))
	r.Use(customMW.Metrics(deps.Metrics))

	healthH := NewHealthController(deps.Registry)
	pluginH := NewPluginController(deps.Registry, deps.Metrics, deps.Logger)
	gatewayH := NewGatewayController(deps.Registry, deps.Metrics)

	r.Get("/health", healthH.Health)
	r.Get("/health/live", healthH.Liveness)
	r.Get("/health/ready", healthH.Readiness)

	if deps.EnableMetrics {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(customMW.RateLimit(deps.RequestsPerMinute))

		// Plugins
		r.Get("/plugins", pluginH.List)
		r.With(customMW.RequireAuth(deps.JWTSecret)).Post("/plugins/{id}/active", pluginH.SetActive)

		// Gateway hooks
		r.Route("/gateways/{id}", func(r chi.Router) {
			r.Get("/config", gatewayH.GetConfig)
			r.Get("/currencies", gatewayH.GetCurrencies)
			r.Get("/client-token", gatewayH.GetClientToken)
			r.Post("/payments/{operation}", gatewayH.Payment)
			r.Post("/checkout-total", gatewayH.CheckoutTotal)
		})
	})

	return r
}

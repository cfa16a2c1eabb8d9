package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/cassiomorais/codgateway/internal/infrastructure/config"
	"github.com/cassiomorais/codgateway/internal/infrastructure/observability"
	"github.com/cassiomorais/codgateway/internal/plugin"
	"github.com/cassiomorais/codgateway/internal/plugin/cash"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Metrics  *observability.Metrics
	Registry *plugin.Registry
	tracer   *sdktrace.TracerProvider
}

// New loads configuration, sets up observability and loads the cash plugin.
// A nil reg registers metrics with the default registry.
func New(cfg *config.Config, serviceName, metricsNamespace string, reg prometheus.Registerer) (*App, error) {
	logger := observability.InitLogger(cfg.Observability.LogLevel, os.Stdout)
	logger.Info().Str("service", serviceName).Str("instance_id", cfg.InstanceID).Msg("Starting")

	app := &App{Config: cfg, Logger: logger}

	if cfg.Observability.EnableTracing {
		tp, err := observability.InitTracer(serviceName, cfg.Observability.JaegerEndpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
		} else {
			app.tracer = tp
			logger.Info().Msg("Tracing enabled")
		}
	}

	app.Metrics = observability.NewMetrics(metricsNamespace, reg)
	logger.Info().Msg("Metrics initialized")

	app.Registry = plugin.NewRegistry()
	cash.Register(app.Registry, cash.WithLogger(logger))

	p, err := app.Registry.Load(cash.EntryPoint, cfg.Plugins.Cash.Items(), cfg.Plugins.Cash.Active)
	if err != nil {
		return nil, fmt.Errorf("load %s plugin: %w", cash.EntryPoint, err)
	}
	app.Metrics.SetActive(p.Manifest().ID, p.IsActive())
	logger.Info().
		Str("plugin", p.Manifest().ID).
		Bool("active", p.IsActive()).
		Msg("Plugin loaded")

	return app, nil
}

// Load reads the configuration from the default locations and builds the App.
func Load(serviceName, metricsNamespace string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return New(cfg, serviceName, metricsNamespace, nil)
}

func (a *App) Close(ctx context.Context) {
	if err := observability.Shutdown(ctx, a.tracer); err != nil {
		a.Logger.Warn().Err(err).Msg("Failed to flush traces")
	}
}

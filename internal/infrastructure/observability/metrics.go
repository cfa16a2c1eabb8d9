package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics
type Metrics struct {
	// Plugin hook metrics
	HookCalls     *prometheus.CounterVec
	HookDuration  *prometheus.HistogramVec
	FeesApplied   *prometheus.CounterVec
	FeeErrors     *prometheus.CounterVec
	ActivePlugins *prometheus.GaugeVec

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all metrics against the given registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := prometheus.WrapRegistererWith(nil, reg)

	m := &Metrics{
		HookCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "plugin_hook_calls_total",
				Help:      "Total number of plugin hook calls by plugin, hook and outcome",
			},
			[]string{"plugin", "hook", "outcome"},
		),
		HookDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "plugin_hook_duration_seconds",
				Help:      "Plugin hook duration in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"plugin", "hook"},
		),
		FeesApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkout_fees_applied_total",
				Help:      "Total number of checkout totals adjusted by a gateway fee",
			},
			[]string{"plugin", "currency"},
		),
		FeeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkout_fee_errors_total",
				Help:      "Total number of checkout total calculations that failed",
			},
			[]string{"plugin"},
		),
		ActivePlugins: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "plugin_active",
				Help:      "Whether a plugin is active (1) or inactive (0)",
			},
			[]string{"plugin"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	// Register all collectors
	factory.MustRegister(
		m.HookCalls,
		m.HookDuration,
		m.FeesApplied,
		m.FeeErrors,
		m.ActivePlugins,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// SetActive records the activation state of a plugin.
func (m *Metrics) SetActive(pluginID string, active bool) {
	v := 0.0
	if active {
		v = 1
	}
	m.ActivePlugins.WithLabelValues(pluginID).Set(v)
}

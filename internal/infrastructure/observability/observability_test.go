package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"verbose", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestInitLogger_WritesStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger("info", &buf)

	logger.Debug().Msg("hidden")
	child := logger.With().Str("plugin", "payments.cash").Logger()
	child.Info().Msg("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "payments.cash", entry["plugin"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "caller")
}

func TestNewMetrics_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("test", reg)

	m.HookCalls.WithLabelValues("payments.cash", "authorize", "success").Inc()
	m.FeesApplied.WithLabelValues("payments.cash", "SAR").Inc()
	m.SetActive("payments.cash", true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HookCalls.WithLabelValues("payments.cash", "authorize", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActivePlugins.WithLabelValues("payments.cash")))

	m.SetActive("payments.cash", false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ActivePlugins.WithLabelValues("payments.cash")))
}

func TestNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics("test", reg)

	assert.Panics(t, func() { NewMetrics("test", reg) })
}

func TestShutdown_NilProvider(t *testing.T) {
	assert.NoError(t, Shutdown(context.Background(), nil))
}

func TestTracer_NotNil(t *testing.T) {
	assert.NotNil(t, Tracer())
}

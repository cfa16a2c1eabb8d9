package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder() (*tracetest.SpanRecorder, otelhttp.Option) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	return sr, otelhttp.WithTracerProvider(tp)
}

func TestTracing_NamesSpanAfterRoutePattern(t *testing.T) {
	sr, opt := newRecorder()

	r := chi.NewRouter()
	r.Use(Tracing("test", opt))
	r.Get("/api/gateways/{id}/currencies", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/gateways/payments.cash/currencies", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/gateways/{id}/currencies", spans[0].Name())
}

func TestTracing_NestedRoutesUseFullPattern(t *testing.T) {
	sr, opt := newRecorder()

	r := chi.NewRouter()
	r.Use(Tracing("test", opt))
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/gateways/{id}", func(r chi.Router) {
			r.Get("/config", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/gateways/payments.cash/config", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/v1/gateways/{id}/config", spans[0].Name())
}

func TestTracing_UnmatchedRouteKeepsPath(t *testing.T) {
	sr, opt := newRecorder()

	r := chi.NewRouter()
	r.Use(Tracing("test", opt))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /missing", spans[0].Name())
}

func TestTracing_WithoutChiFallsBackToPath(t *testing.T) {
	sr, opt := newRecorder()

	handler := Tracing("test", opt)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /unknown", spans[0].Name())
}

func TestTracing_PreservesResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"200 OK", http.StatusOK, `{"status":"ok"}`},
		{"404 Not Found", http.StatusNotFound, `{"code":"not_found"}`},
		{"409 Conflict", http.StatusConflict, `{"code":"plugin_inactive"}`},
		{"500 Internal Server Error", http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, opt := newRecorder()
			handler := Tracing("test", opt)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))

			req := httptest.NewRequest(http.MethodPost, "/test", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

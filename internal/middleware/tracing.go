package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Tracing starts a server span per request. otelhttp names the span again
// after the handler returns when routing set r.Pattern; at that point the
// full chi route is used so plugin IDs in the path stay out of span names.
func Tracing(service string, opts ...otelhttp.Option) func(http.Handler) http.Handler {
	opts = append([]otelhttp.Option{otelhttp.WithSpanNameFormatter(spanName)}, opts...)

	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, service, opts...)
	}
}

func spanName(_ string, r *http.Request) string {
	if r.Pattern != "" {
		// Nested routers leave only the leaf pattern in r.Pattern.
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			return r.Method + " " + rctx.RoutePattern()
		}
		return r.Method + " " + r.Pattern
	}
	return r.Method + " " + r.URL.Path
}

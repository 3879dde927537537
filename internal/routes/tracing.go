package routes

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Traced wraps the router so every inbound request opens a server span. An incoming
// traceparent header becomes the span's parent.
func Traced(router http.Handler) http.Handler {
	return otelhttp.NewHandler(router, "storefront",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

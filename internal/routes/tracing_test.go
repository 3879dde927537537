package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/bklyngarment/storefront/internal/tracing"
)

func TestTracedRequestJoinsIncomingTrace(t *testing.T) {
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	exporter := tracetest.NewInMemoryExporter()
	provider := tracing.NewProviderWithExporter("routes-test", exporter)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	hs := newHarness(t, allFeatures())
	const incoming = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("traceparent", incoming)
	w := httptest.NewRecorder()
	Traced(hs.router).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var server, clients int
	for _, s := range exporter.GetSpans() {
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", s.SpanContext.TraceID().String(), s.Name)
		switch s.SpanKind {
		case trace.SpanKindServer:
			server++
			assert.Equal(t, "GET /", s.Name)
			assert.Equal(t, "00f067aa0ba902b7", s.Parent.SpanID().String())
		case trace.SpanKindClient:
			clients++
		}
	}
	assert.Equal(t, 1, server)
	assert.Positive(t, clients, "backend calls should be traced as children")
}

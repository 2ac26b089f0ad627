package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInitTracerDisabled(t *testing.T) {
	tp, err := InitTracer(Config{ServiceName: "storefront-test"})
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, Shutdown(context.Background(), tp))
}

func TestInitTracerEnabled(t *testing.T) {
	tp, err := InitTracer(Config{
		ServiceName:    "storefront-test",
		Enabled:        true,
		JaegerEndpoint: "http://127.0.0.1:1/api/traces",
	})
	require.NoError(t, err)
	_, ok := tp.(*sdktrace.TracerProvider)
	assert.True(t, ok)

	// nothing was exported, so shutdown does not touch the collector
	assert.NoError(t, Shutdown(context.Background(), tp))
}

package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wms/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// setupTestTracer installs an in-memory span recorder as the global provider
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, a := range attrs {
		if string(a.Key) == key {
			return a.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestStartServiceSpan(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartServiceSpan(context.Background(), "inventory", "launch",
		telemetry.WithAttribute(telemetry.SpanAttrInventoryID, int64(42)),
		telemetry.WithSpanKind(trace.SpanKindServer))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "inventory.launch", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())

	v, ok := attrValue(spans[0].Attributes(), telemetry.SpanAttrInventoryID)
	require.True(t, ok)
	assert.Equal(t, int64(42), v.AsInt64())
}

func TestSetAttributes(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartSpan(context.Background(), "ecart.resolve")
	telemetry.SetAttributes(span,
		telemetry.SpanAttrInventoryReference, "INV-1",
		42, "skipped",
		telemetry.SpanAttrSeededDetails, 3,
	)
	productID := int64(7)
	telemetry.SetAttribute(span, "product.id", &productID)
	span.End()

	attrs := sr.Ended()[0].Attributes()
	v, ok := attrValue(attrs, telemetry.SpanAttrInventoryReference)
	require.True(t, ok)
	assert.Equal(t, "INV-1", v.AsString())

	v, ok = attrValue(attrs, telemetry.SpanAttrSeededDetails)
	require.True(t, ok)
	assert.Equal(t, int64(3), v.AsInt64())

	v, ok = attrValue(attrs, "product.id")
	require.True(t, ok)
	assert.Equal(t, int64(7), v.AsInt64())
	assert.Len(t, attrs, 3)
}

func TestRecordError(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartSpan(context.Background(), "inventory.complete")
	telemetry.RecordError(span, errors.New("jobs still open"))
	telemetry.RecordError(span, nil)
	span.End()

	recorded := sr.Ended()[0]
	assert.Equal(t, codes.Error, recorded.Status().Code)
	assert.Equal(t, "jobs still open", recorded.Status().Description)
	require.Len(t, recorded.Events(), 1)
	assert.Equal(t, "exception", recorded.Events()[0].Name)
}

func TestAddEvent(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartSpan(context.Background(), "inventory.launch")
	telemetry.AddEvent(span, "snapshot_seeded", "rows", 12)
	span.End()

	events := sr.Ended()[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "snapshot_seeded", events[0].Name)
}

func TestTraceIDs(t *testing.T) {
	t.Run("empty without span", func(t *testing.T) {
		assert.Empty(t, telemetry.GetTraceID(context.Background()))
		assert.Empty(t, telemetry.GetSpanID(context.Background()))
	})

	t.Run("valid inside span", func(t *testing.T) {
		setupTestTracer(t)

		ctx, span := telemetry.StartSpan(context.Background(), "op")
		defer span.End()

		assert.Len(t, telemetry.GetTraceID(ctx), 32)
		assert.Len(t, telemetry.GetSpanID(ctx), 16)
	})
}

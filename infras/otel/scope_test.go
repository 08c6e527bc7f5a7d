package otel_test

import (
	"context"
	"errors"
	"petstay/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder() (*tracetest.SpanRecorder, otel.Otel) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	return recorder, otel.NewWithProvider(provider)
}

func failing(o otel.Otel) (err error) {
	_, scope := o.NewScope(context.Background(), "service", "service.CheckIn")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = errors.New("no Dog room available")

	return err
}

func TestScope_TraceIfErrorSeesNamedReturn(t *testing.T) {
	recorder, o := newRecorder()

	_ = failing(o)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "service.CheckIn", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "no Dog room available", spans[0].Status().Description)
}

func TestScope_Attributes(t *testing.T) {
	recorder, o := newRecorder()

	_, scope := o.NewScope(context.Background(), "handler", "handler.GetStats")
	scope.SetAttributes(map[string]any{
		"http.status_code": 200,
		"allowed_roles":    []string{"admin", "staff"},
		"rooms.free":       int64(17),
	})
	scope.TraceError(nil)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Len(t, spans[0].Attributes(), 3)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

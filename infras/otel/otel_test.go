package otel_test

import (
	"context"
	"errors"
	"rooming/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder() (*tracetest.SpanRecorder, otel.Otel) {
	recorder := tracetest.NewSpanRecorder()

	return recorder, otel.NewWithProvider(trace.NewTracerProvider(trace.WithSpanProcessor(recorder)))
}

func linkBooking(tracer otel.Otel, fail bool) (err error) {
	_, scope := tracer.NewScope(context.Background(), "service", "service.booking.Link")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttributes(map[string]any{
		"booking.id":      int64(7),
		"rooming_list.id": 3,
		"dry_run":         false,
	})

	if fail {
		return errors.New("booking already linked")
	}

	return nil
}

func TestScope_TraceIfErrorSeesReturnedError(t *testing.T) {
	recorder, tracer := newRecorder()

	require.Error(t, linkBooking(tracer, true))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "service.booking.Link", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "booking already linked", spans[0].Status().Description)
}

func TestScope_SuccessLeavesStatusUnset(t *testing.T) {
	recorder, tracer := newRecorder()

	require.NoError(t, linkBooking(tracer, false))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.Int64("booking.id", 7))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("rooming_list.id", 3))
	assert.Contains(t, spans[0].Attributes(), attribute.Bool("dry_run", false))
}

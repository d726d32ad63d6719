package otel

import (
	"context"
	"coworking/shared/failure"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
		wantCode   int64
		wantEvent  string
	}{
		{name: "taken slot", err: failure.Conflict("taken"), wantStatus: codes.Unset, wantCode: 409, wantEvent: "rejected"},
		{name: "unknown resource", err: failure.NotFound("resource"), wantStatus: codes.Unset, wantCode: 404, wantEvent: "rejected"},
		{name: "unexpected", err: errors.New("boom"), wantStatus: codes.Error, wantCode: 500, wantEvent: "exception"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			o := &otelImpl{TracerProvider: trace.NewTracerProvider(trace.WithSpanProcessor(recorder))}

			_, scope := o.NewScope(context.Background(), "service", "service.booking.Book")
			scope.TraceIfError(tt.err)
			scope.End()

			spans := recorder.Ended()
			require.Len(t, spans, 1)

			span := spans[0]
			assert.Equal(t, tt.wantStatus, span.Status().Code)
			assert.Contains(t, span.Attributes(), attribute.Int(attributeFailureCode, int(tt.wantCode)))

			require.Len(t, span.Events(), 1)
			assert.Equal(t, tt.wantEvent, span.Events()[0].Name)
		})
	}
}

func TestToAttribute(t *testing.T) {
	assert.Equal(t, attribute.Int64Slice("ids", []int64{1, 2}), toAttribute("ids", []int64{1, 2}))
	assert.Equal(t, attribute.String("float", "3.5"), toAttribute("float", 3.5))
}

package sl_test

import (
	"errors"
	"testing"

	"freight/internal/pkg/sl"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestErr(t *testing.T) {
	attr := sl.Err(errors.New("boom"))

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.String())
	assert.Nil(t, sl.Err(nil).Value.Any())
}

func TestTraced(t *testing.T) {
	t.Run("without span", func(t *testing.T) {
		attr := sl.Traced(t.Context())

		assert.Equal(t, "trace_id", attr.Key)
		assert.Nil(t, attr.Value.Any())
	})

	t.Run("with span", func(t *testing.T) {
		traceID := trace.TraceID{0x01, 0x02}
		sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: trace.SpanID{0x01}})
		ctx := trace.ContextWithSpanContext(t.Context(), sc)

		attr := sl.Traced(ctx)

		assert.Equal(t, traceID.String(), attr.Value.String())
	})
}

// Package sl holds shared slog attributes.
package sl

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Err wraps err into an "error" attribute.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Any("error", nil)
	}
	return slog.String("error", err.Error())
}

// Traced returns the trace id of the span stored in ctx, if any.
func Traced(ctx context.Context) slog.Attr {
	spanContext := trace.SpanFromContext(ctx).SpanContext()
	if spanContext.HasTraceID() {
		return slog.String("trace_id", spanContext.TraceID().String())
	}
	return slog.Any("trace_id", nil)
}

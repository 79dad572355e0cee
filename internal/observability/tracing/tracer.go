package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name used for all spans of the service.
const TracerName = "newsdesk"

// GetTracer returns the tracer for creating spans.
// It resolves the global provider on each call so a provider installed after
// package initialization (including in tests) is honored.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

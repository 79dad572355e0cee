// Package tracing provides OpenTelemetry tracing integration.
//
// The HTTP middleware extracts W3C trace context, starts a server span per
// request and exposes the trace ID in the X-Trace-Id response header. The
// usecase layer starts child spans through GetTracer. Without a configured
// TracerProvider the global no-op provider is used.
package tracing

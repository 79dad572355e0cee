// Package observability provides the logging, metrics and tracing infrastructure
// shared by the HTTP handlers, usecases and repositories.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracing integration
//
// Example usage:
//
//	import (
//	    "newsdesk/internal/observability/logging"
//	    "newsdesk/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.New(os.Stdout, "info", "json")
//	    logger.Info("application started")
//
//	    metrics.RecordArticleCreated("Technology")
//	}
package observability

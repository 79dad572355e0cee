// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes application metrics:
//   - HTTP request metrics (duration, count, size, in-flight)
//   - Business metrics (articles created per category)
//   - Database query metrics and connection pool gauges
//
// All metrics are registered with the Prometheus default registry and
// exposed via the /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	n, err := repo.Count(ctx, filter)
//	metrics.RecordDBQuery("count", time.Since(start))
package metrics

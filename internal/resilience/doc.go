// Package resilience groups fault tolerance helpers for the article store.
//
// The circuitbreaker subpackage wraps the database handle so that a failing
// PostgreSQL instance is reported to callers immediately instead of every
// request waiting for its own connection timeout. Errors are never retried;
// an open circuit surfaces as an ordinary storage failure.
//
// Usage Example:
//
//	dcb := circuitbreaker.NewDBCircuitBreaker(db)
//	rows, err := dcb.QueryContext(ctx, "SELECT COUNT(*) FROM articles")
package resilience

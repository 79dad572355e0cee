package metrics

import (
	"database/sql"
	"time"
)

// RecordArticleCreated increments the created counter for category.
func RecordArticleCreated(category string) {
	ArticlesCreatedTotal.WithLabelValues(category).Inc()
}

// RecordValidationFailure records a create request rejected on field.
func RecordValidationFailure(field string) {
	ArticleValidationFailuresTotal.WithLabelValues(field).Inc()
}

// RecordDBQuery records the duration of a database query operation.
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordDBError records a failed database query operation.
func RecordDBError(operation string) {
	DBQueryErrorsTotal.WithLabelValues(operation).Inc()
}

// UpdateDBPoolStats copies pool statistics into the connection gauges.
func UpdateDBPoolStats(stats sql.DBStats) {
	DBConnectionsActive.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
}

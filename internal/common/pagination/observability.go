package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs a pagination request with structured fields.
func LogRequest(logger *slog.Logger, params Params, attrs ...any) {
	args := append([]any{"page", params.Page, "limit", params.Limit}, attrs...)
	logger.Info("Paginated request", args...)
}

// LogResponse logs a pagination response with duration and status.
func LogResponse(logger *slog.Logger, params Params, returnedCount int, duration time.Duration, statusCode int) {
	logger.Info("Paginated response",
		"page", params.Page,
		"limit", params.Limit,
		"returned_count", returnedCount,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode)
}

// LogError logs a pagination error with structured fields.
func LogError(logger *slog.Logger, params Params, err error, errorType string) {
	logger.Error("Pagination error",
		"page", params.Page,
		"limit", params.Limit,
		"error", err.Error(),
		"error_type", errorType)
}

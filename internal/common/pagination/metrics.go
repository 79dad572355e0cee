package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts the total number of list requests.
	// Labels: status (HTTP status code), page_range (page bucket: 1-10, 11-50, etc.)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_list_requests_total",
			Help: "Total number of paginated news list requests",
		},
		[]string{"status", "page_range"},
	)

	// DurationSeconds tracks list duration distribution.
	// Labels: operation (handler, service)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_list_duration_seconds",
			Help:    "News list duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// MatchedCount tracks the matching article count of the latest list request.
	MatchedCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_list_matched_articles",
			Help: "Number of articles matched by the most recent list request",
		},
	)

	// ErrorsTotal counts list errors by type.
	// Labels: type (validation, database, circuit_open)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_list_errors_total",
			Help: "Total number of news list errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records a list request metric.
func RecordRequest(statusCode int, page int) {
	RequestsTotal.WithLabelValues(strconv.Itoa(statusCode), getPageRangeBucket(page)).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(operation string, duration float64) {
	DurationSeconds.WithLabelValues(operation).Observe(duration)
}

// UpdateMatchedCount updates the matched article gauge.
func UpdateMatchedCount(count int64) {
	MatchedCount.Set(float64(count))
}

// RecordError records an error metric.
// errorType should be one of: "validation", "database", "circuit_open"
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// getPageRangeBucket returns the page range bucket for a given page number.
func getPageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}

package http

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
)

const (
	maxPathLength  = 2048
	maxQueryLength = 4096
)

// InputValidation rejects requests whose path or query string exceed sane
// limits before they reach routing or logging.
func InputValidation() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > maxPathLength {
				respond.Failure(w, http.StatusRequestURITooLong, "URI too long")
				return
			}
			if len(r.URL.RawQuery) > maxQueryLength {
				respond.Failure(w, http.StatusRequestURITooLong, "query string too long")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

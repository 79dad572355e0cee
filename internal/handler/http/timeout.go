package http

import (
	"context"
	"net/http"
	"time"
)

// Timeout returns middleware that bounds the request context by duration.
// Database calls observe the deadline and fail with context.DeadlineExceeded,
// which the handlers report as a storage failure. A non-positive duration
// disables the middleware.
func Timeout(duration time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if duration <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

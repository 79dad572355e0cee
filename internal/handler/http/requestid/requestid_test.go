package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{
			name:     "with request ID",
			ctx:      WithRequestID(context.Background(), "test-id-123"),
			expected: "test-id-123",
		},
		{
			name:     "without request ID",
			ctx:      context.Background(),
			expected: "",
		},
		{
			name:     "with invalid type in context",
			ctx:      context.WithValue(context.Background(), RequestIDKey, 12345),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromContext(tt.ctx))
		})
	}
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		propagate bool
	}{
		{name: "existing ID is kept", header: "existing-request-id-456", propagate: true},
		{name: "missing ID is generated", header: "", propagate: false},
		{name: "ID with spaces is replaced", header: "bad id", propagate: false},
		{name: "overlong ID is replaced", header: strings.Repeat("a", maxIDLength+1), propagate: false},
		{name: "non-ASCII ID is replaced", header: "記事-1", propagate: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var capturedID string
			handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				capturedID = FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if tt.propagate {
				assert.Equal(t, tt.header, capturedID)
			} else {
				_, err := uuid.Parse(capturedID)
				assert.NoError(t, err, "generated ID should be a valid UUID")
			}
			assert.Equal(t, capturedID, rec.Header().Get(RequestIDHeader))
		})
	}
}

func TestMiddleware_UniqueIDs(t *testing.T) {
	requestIDs := make(map[string]bool)
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDs[FromContext(r.Context())] = true
	}))

	for i := 0; i < 10; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/news", nil))
	}

	assert.Len(t, requestIDs, 10)
}

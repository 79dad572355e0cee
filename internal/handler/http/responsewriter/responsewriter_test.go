package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, 0, wrapped.BytesWritten())
	assert.False(t, wrapped.Written())
}

func TestWrap_ReusesWrapper(t *testing.T) {
	wrapped := Wrap(httptest.NewRecorder())

	assert.Same(t, wrapped, Wrap(wrapped))
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	for _, code := range []int{http.StatusCreated, http.StatusBadRequest, http.StatusInternalServerError} {
		rec := httptest.NewRecorder()
		wrapped := Wrap(rec)

		wrapped.WriteHeader(code)
		wrapped.WriteHeader(http.StatusTeapot)

		assert.Equal(t, code, wrapped.StatusCode(), "first status wins")
		assert.Equal(t, code, rec.Code)
		assert.True(t, wrapped.Written())
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	n, err := wrapped.Write([]byte(`{"success":true}`))
	assert.NoError(t, err)
	_, _ = wrapped.Write([]byte("\n"))

	assert.Equal(t, 16, n)
	assert.Equal(t, 17, wrapped.BytesWritten())
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, "{\"success\":true}\n", rec.Body.String())
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.Flush()

	assert.True(t, rec.Flushed)
	assert.True(t, wrapped.Written())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()

	assert.Equal(t, rec, Wrap(rec).Unwrap())
}

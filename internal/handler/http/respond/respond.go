// Package respond writes the JSON envelopes shared by all API endpoints.
//
// Successful responses carry {"success":true,"data":...}; failures carry
// {"success":false,"message":...}. Messages of server-side failures are
// sanitized before they leave the process.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"newsdesk/internal/domain/entity"
)

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type failureEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Success writes {"success":true,"data":data}.
func Success(w http.ResponseWriter, code int, data any) {
	JSON(w, code, successEnvelope{Success: true, Data: data})
}

// Failure writes {"success":false,"message":msg}.
func Failure(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, failureEnvelope{Success: false, Message: msg})
}

// Error maps err onto a failure envelope.
//
// Validation errors are reported with their descriptive message and are not
// logged as server faults. Any other error is reported with its sanitized
// message, which is logged for 5xx codes.
func Error(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var vErr *entity.ValidationError
	if errors.As(err, &vErr) {
		Failure(w, code, vErr.Message)
		return
	}

	msg := SanitizeError(err)
	if code >= http.StatusInternalServerError {
		slog.Default().Error("internal server error",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.String("error", msg))
	}
	Failure(w, code, msg)
}

// Package response provides HTTP response helpers for handlers and middleware
// that sit outside the huma operation pipeline.
package response

import (
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	domainerrors "github.com/launchplanner/launchplanner-server/internal/errors"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// JSON writes data as the raw JSON response body with the given status code.
func JSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		if logger != nil {
			logger.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// Error writes an error response with the given status code.
func Error(w http.ResponseWriter, status int, code domainerrors.Code, message string, logger *slog.Logger) {
	JSON(w, status, ErrorBody{Error: message, Code: string(code)}, logger)
}

// NotFound writes a 404 Not Found response.
func NotFound(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusNotFound, domainerrors.CodeNotFound, message, logger)
}

// TooManyRequests writes a 429 response and a Retry-After hint.
func TooManyRequests(w http.ResponseWriter, message string, logger *slog.Logger) {
	w.Header().Set("Retry-After", "60")
	Error(w, http.StatusTooManyRequests, domainerrors.CodeRateLimited, message, logger)
}

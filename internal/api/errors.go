package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/launchplanner/launchplanner-server/internal/errors"
)

// APIError is the error body huma writes for failures it raises itself,
// such as body schema violations. It has the same shape as domain errors.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Message string `json:"error" doc:"Human-readable error message"`
	Code    string `json:"code" doc:"Machine-readable error code"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to use domain errors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		var details []string
		for _, err := range errs {
			var domainErr *domainerrors.Error
			if errors.As(err, &domainErr) {
				return domainErr
			}
			if err != nil {
				details = append(details, err.Error())
			}
		}

		// Request validation failures are client errors like any other.
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}

		if status == http.StatusBadRequest && len(details) > 0 {
			message = strings.TrimSuffix(message, ".") + ": " + strings.Join(details, "; ")
		}

		apiErr := &APIError{
			status:  status,
			Code:    statusToCode(status),
			Message: message,
		}
		if len(details) > 0 {
			apiErr.Details = details
		}
		return apiErr
	}
}

// statusToCode maps HTTP status codes to our domain error codes.
func statusToCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return string(domainerrors.CodeValidation)
	case http.StatusNotFound:
		return string(domainerrors.CodeNotFound)
	case http.StatusConflict:
		return string(domainerrors.CodeConflict)
	case http.StatusTooManyRequests:
		return string(domainerrors.CodeRateLimited)
	default:
		if status < http.StatusInternalServerError {
			return "BAD_REQUEST"
		}
		return string(domainerrors.CodeInternal)
	}
}

package shopapi

import (
	"errors"
	"fmt"
)

// Envelope wraps every backend payload.
type Envelope[T any] struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Status  string `json:"status"`
}

// APIError is returned for non-2xx responses and for envelopes with success=false.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Status     string `json:"status,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("shop api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("shop api error: status %d: %s", e.StatusCode, e.Message)
}

// ErrorMessage returns the server-provided message carried by err, or fallback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

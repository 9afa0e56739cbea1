// Package apperror defines the closed set of failure classes the API can
// produce. Every error carries an HTTP status code and a message that is safe
// to show to clients; the fiber error handler maps them to JSON responses in
// one place. Raw database or upstream errors are never surfaced directly.
package apperror

import (
	"fmt"
	"net/http"
)

// Error is the base type for all classified failures.
type Error struct {
	// Code is the HTTP status this error maps to.
	Code int `json:"-"`

	// Type is a machine-readable classifier (e.g. "not_found").
	Type string `json:"type"`

	// Message is a human-readable description safe for the client.
	Message string `json:"message"`

	// Internal holds the underlying cause for logging. Never sent to clients.
	Internal error `json:"-"`

	// UpstreamStatus and UpstreamBody carry diagnostics for upstream
	// failures. Logged only, never exposed.
	UpstreamStatus int    `json:"-"`
	UpstreamBody   string `json:"-"`
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap supports errors.Is/As on the underlying cause.
func (e *Error) Unwrap() error {
	return e.Internal
}

// NewValidation creates a 400 error for malformed or missing input.
func NewValidation(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Type: "validation_error", Message: message}
}

// NewUnauthorized creates a 401 error for missing or invalid credentials.
func NewUnauthorized(message string) *Error {
	return &Error{Code: http.StatusUnauthorized, Type: "unauthorized", Message: message}
}

// NewNotFound creates a 404 error.
func NewNotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Type: "not_found", Message: message}
}

// NewConflict creates a 409 error for uniqueness violations.
func NewConflict(message string) *Error {
	return &Error{Code: http.StatusConflict, Type: "conflict", Message: message}
}

// NewUpstream creates a 502 error for a failed or malformed upstream provider
// response. The upstream status and body are retained for logging.
func NewUpstream(message string, upstreamStatus int, upstreamBody string) *Error {
	return &Error{
		Code:           http.StatusBadGateway,
		Type:           "upstream_error",
		Message:        message,
		UpstreamStatus: upstreamStatus,
		UpstreamBody:   upstreamBody,
	}
}

// NewInternal creates a 500 error. The real cause is kept in Internal for
// logging; the client only ever sees a generic message.
func NewInternal(err error) *Error {
	return &Error{
		Code:     http.StatusInternalServerError,
		Type:     "internal_error",
		Message:  "An unexpected error occurred",
		Internal: err,
	}
}

// SafeMessage returns the client-safe message for any error. Unclassified
// errors degrade to a generic message so internals never leak.
func SafeMessage(err error) string {
	if appErr, ok := err.(*Error); ok {
		return appErr.Message
	}
	return "An unexpected error occurred"
}

// SafeCode returns the HTTP status for any error, defaulting to 500.
func SafeCode(err error) int {
	if appErr, ok := err.(*Error); ok {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

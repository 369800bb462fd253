package domain

import "errors"

var (
	// ErrSessionExpired is the typed form of the API's unauthorized
	// sentinel. The string comparison happens exactly once, at the API
	// client boundary; everything above it branches on this error.
	ErrSessionExpired = errors.New("admin session expired")

	ErrRecordNotFound = errors.New("record not found")
)

// APIError is a well-formed error body unrelated to auth. Its message
// is surfaced verbatim to the operator.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// ValidationError is raised before transmission; an input that fails
// validation never reaches the network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// Package errors provides structured error handling with HTTP status code
// mapping for the analysis API.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes an error for metrics and response mapping.
type ErrorType string

const (
	// TypeValidation covers invalid input and data-sufficiency failures (HTTP 400).
	TypeValidation ErrorType = "validation"
	// TypeExternal covers upstream provider failures. They surface as HTTP 500
	// like any server-side failure, but carry their own message and are
	// reported separately in logs and metrics.
	TypeExternal ErrorType = "external"
	// TypeInternal covers unexpected server-side failures (HTTP 500).
	TypeInternal ErrorType = "internal"
)

// Error is a structured error with type, user-facing message, and context.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the status code for this error type.
func (e *Error) HTTPStatus() int {
	switch e.Type {
	case TypeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError creates a validation error (HTTP 400).
func ValidationError(message string) *Error {
	return &Error{Type: TypeValidation, Message: message}
}

// ExternalError creates an upstream provider error (HTTP 500, own message).
func ExternalError(message string, cause error) *Error {
	return &Error{Type: TypeExternal, Message: message, Cause: cause}
}

// InternalError creates an internal error (HTTP 500). The message is sent to
// the client, so it must not leak details; attach those via cause instead.
func InternalError(message string, cause error) *Error {
	return &Error{Type: TypeInternal, Message: message, Cause: cause}
}

// WithField adds a context field to the error (chainable). Context fields are
// logged but never serialized into responses.
func (e *Error) WithField(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// ErrorResponse is the JSON body sent to clients on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToResponse converts an Error to its client-facing JSON form.
func (e *Error) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// AsStructuredError converts any error into a structured Error. An *Error
// passes through unchanged; anything else becomes an internal error with a
// generic message.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}
	var structured *Error
	if errors.As(err, &structured) {
		return structured
	}
	return InternalError("service unavailable, please try again", err)
}

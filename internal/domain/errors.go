package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface keeps the handler layer free of
// per-error switch statements.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// PreconditionError indicates a required precondition for an
	// operation failed (e.g. a brief with no uploaded documents).
	PreconditionError struct {
		Message string
	}

	// ProviderError indicates the external AI provider call failed at
	// the transport level. Unparsable responses are recovered locally
	// and never become a ProviderError.
	ProviderError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *PreconditionError) Error() string { return e.Message }
func (e *ProviderError) Error() string     { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *PreconditionError) StatusCode() int { return http.StatusBadRequest }
func (e *ProviderError) StatusCode() int     { return http.StatusBadGateway }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrNoDocuments       = errors.New("no documents uploaded")
	ErrNoExtractableText = errors.New("no extractable text")
	ErrProvider          = errors.New("provider call failed")
)

// Is allows errors.Is() matches against the sentinels so callers can
// branch on the condition without caring about the concrete type.
func (e *NotFoundError) Is(target error) bool   { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
func (e *ProviderError) Is(target error) bool   { return target == ErrProvider }

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the route offer service.
var (
	// ErrInvalidRequest indicates the client request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyItinerary indicates an itinerary with zero legs reached the offer builder.
	ErrEmptyItinerary = errors.New("empty itinerary")

	// ErrIndexOutOfRange indicates an offer index outside the current view.
	ErrIndexOutOfRange = errors.New("offer index out of range")

	// ErrStaleResult indicates a route result arrived after a newer query was issued.
	ErrStaleResult = errors.New("stale route result")

	// ErrSessionNotFound indicates an unknown or expired session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotFound indicates a missing key in a store.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable indicates the upstream route finder could not serve the request.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// FetchError wraps a failure of the upstream route finder.
// The service does not interpret it beyond deciding whether to retry.
type FetchError struct {
	// Endpoint is the upstream operation that failed (routes, planets, companies)
	Endpoint string

	// StatusCode is the upstream HTTP status, zero for transport failures
	StatusCode int

	// Retryable marks transient failures (timeouts, 5xx, 429)
	Retryable bool

	// Err is the underlying cause
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports every FetchError as ErrUpstreamUnavailable.
func (e *FetchError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

// NewFetchError creates a non-retryable fetch error.
func NewFetchError(endpoint string, statusCode int, err error) *FetchError {
	return &FetchError{Endpoint: endpoint, StatusCode: statusCode, Err: err}
}

// NewRetryableFetchError creates a fetch error that may succeed on retry.
func NewRetryableFetchError(endpoint string, statusCode int, err error) *FetchError {
	return &FetchError{Endpoint: endpoint, StatusCode: statusCode, Retryable: true, Err: err}
}

// IsRetryableFetch reports whether err carries a retryable FetchError.
func IsRetryableFetch(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Retryable
	}
	return false
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap makes every ValidationError match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest formats a message wrapped around ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is a validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsIndexOutOfRange reports whether err references a nonexistent offer.
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}

// IsStaleResult reports whether err marks a superseded route result.
func IsStaleResult(err error) bool {
	return errors.Is(err, ErrStaleResult)
}

// IsNotFound reports whether err marks a missing stored value.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

package skyetel

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMethod is returned when the dispatcher is handed an HTTP
// verb outside GET/POST/PATCH. Hitting it means a bug in this package,
// not a runtime condition worth retrying.
var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

// UnavailableError indicates the API could not be reached at all:
// connection refused, timeout, DNS failure. The request may be retried
// by the caller.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("skyetel API unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// APIError represents a non-200 response from the API. Message carries the
// server's ERROR field verbatim; the API provides no structured error codes.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("skyetel API error: status %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized checks if the error indicates bad credentials.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsNotFound checks if the error indicates a missing resource.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// ValidationError indicates a filter or payload violated one of the API's
// documented parameter rules. It is raised before any network call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid search filter: %s", e.Reason)
}

// DecodeError indicates a 200 response whose body does not match the shape
// the endpoint is documented to return, typically a missing required field.
// It is distinct from APIError because the HTTP call itself succeeded.
type DecodeError struct {
	Resource string
	Field    string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed %s payload: missing required field %q", e.Resource, e.Field)
	}
	return fmt.Sprintf("malformed %s payload: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

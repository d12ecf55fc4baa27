package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid catalog configuration")
	// ErrInvalidID indicates a non-positive entity identifier
	ErrInvalidID = errors.New("invalid catalog identifier")
	// ErrInvalidQuery indicates a browse query that cannot be sent
	ErrInvalidQuery = errors.New("invalid browse query")
)

// Resource names used in error messages
const (
	ResourceBrowse      = "Browse"
	ResourceGenres      = "Browse genre"
	ResourceTitle       = "Title"
	ResourceContributor = "Contributor"
)

// RequestError reports a catalog call that did not produce a successful response.
// StatusCode is zero when the request failed before a response arrived.
type RequestError struct {
	Resource   string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s request failed: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("%s request failed with status %d", e.Resource, e.StatusCode)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates a not found response
func (e *RequestError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsServerError checks if the error indicates a 5xx response
func (e *RequestError) IsServerError() bool {
	return e.StatusCode >= 500
}

// DecodeError reports a response body that does not match the expected shape
type DecodeError struct {
	Resource string
	Err      error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s response could not be decoded: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

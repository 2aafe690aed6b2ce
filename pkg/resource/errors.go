package resource

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for resource client operations.
var (
	// ErrEmptyPath is returned by New when the collection path is blank.
	ErrEmptyPath = errors.New("resource path is empty")
	// ErrMissingID is returned before any I/O when an operation that
	// addresses a single item is called with an empty id.
	ErrMissingID = errors.New("resource id is required")
	// ErrNotFound is wrapped by errors returned for 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrConflict is wrapped by errors returned for 409 responses.
	ErrConflict = errors.New("resource already exists")
)

// APIError is returned for any response outside the 2xx range. It carries
// the HTTP status and the parsed response payload so callers can inspect
// both without re-reading the body.
type APIError struct {
	// Status is the HTTP status code of the failed response.
	Status int
	// Payload is the parsed response body: a decoded JSON value when the
	// response declared JSON, otherwise the raw text.
	Payload any
	// Message is the human-readable failure message, derived from the
	// payload's "message" field, then the HTTP status text, then a
	// generic fallback.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Unwrap maps well-known statuses onto sentinel errors so callers can use
// errors.Is(err, ErrNotFound) without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}
	return nil
}

// AsAPIError unwraps err into an *APIError, if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

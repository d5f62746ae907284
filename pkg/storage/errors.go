package storage

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound reports that no object exists under the key.
	ErrNotFound = errors.New("object not found")
	// ErrEmptyKey reports a blank object key.
	ErrEmptyKey = errors.New("storage key must not be empty")
	// ErrInvalidKey reports a key with a ".." segment.
	ErrInvalidKey = errors.New("storage key contains invalid path segment")
)

// MapHTTPStatus maps storage errors to HTTP status codes. ok is false for
// errors this package does not define.
func MapHTTPStatus(err error) (status int, ok bool) {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, ErrEmptyKey), errors.Is(err, ErrInvalidKey):
		return http.StatusBadRequest, true
	}
	return http.StatusInternalServerError, false
}

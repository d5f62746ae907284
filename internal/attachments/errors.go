package attachments

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/handlers"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/repository"
	"github.com/JaimeStill/jobtracker/pkg/storage"
)

var (
	ErrNotFound        = errors.New("attachment not found")
	ErrDuplicate       = errors.New("attachment already confirmed")
	ErrMissingFields   = errors.New("file_name is required")
	ErrInvalidFileName = errors.New("file_name must not contain path separators")
	ErrInvalidSize     = errors.New("size_bytes must not be negative")
	ErrTooLarge        = errors.New("file exceeds the maximum attachment size")
	ErrNotUploaded     = errors.New("no uploaded object found for attachment")
)

// MapHTTPStatus maps attachment errors, object store errors, and the
// application errors raised by the ownership check to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidFileName),
		errors.Is(err, ErrInvalidSize),
		errors.Is(err, ErrTooLarge),
		errors.Is(err, ErrNotUploaded),
		errors.Is(err, pagination.ErrInvalidToken),
		errors.Is(err, handlers.ErrInvalidBody),
		errors.Is(err, handlers.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	if status, ok := storage.MapHTTPStatus(err); ok {
		return status
	}
	return applications.MapHTTPStatus(err)
}

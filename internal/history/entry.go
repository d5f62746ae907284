// Package history records the status transitions of applications.
package history

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/handlers"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/repository"
)

// Entry is one status transition of an application.
type Entry struct {
	ID            uuid.UUID           `json:"id"`
	ApplicationID uuid.UUID           `json:"application_id"`
	OldStatus     applications.Status `json:"old_status"`
	NewStatus     applications.Status `json:"new_status"`
	ChangedAt     time.Time           `json:"changed_at"`
}

var (
	ErrNotFound  = errors.New("status history entry not found")
	ErrDuplicate = errors.New("status history entry already exists")
)

// MapHTTPStatus maps history errors, and the application errors raised by
// the ownership check, to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, pagination.ErrInvalidToken),
		errors.Is(err, handlers.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return applications.MapHTTPStatus(err)
}

package interviews

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/handlers"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/repository"
)

var (
	ErrNotFound      = errors.New("interview not found")
	ErrDuplicate     = errors.New("interview already exists")
	ErrMissingFields = errors.New("date and type are required")
	ErrInvalidType   = errors.New("type must be one of PhoneScreen, TechnicalScreen, Onsite, Virtual, TakeHomeAssignment, BehavioralInterview, PanelInterview, FinalRound, Other")
)

// MapHTTPStatus maps interview errors, and the application errors raised by
// the ownership check, to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidType),
		errors.Is(err, pagination.ErrInvalidToken),
		errors.Is(err, handlers.ErrInvalidBody),
		errors.Is(err, handlers.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return applications.MapHTTPStatus(err)
}

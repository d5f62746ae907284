package applications

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/jobtracker/pkg/handlers"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/repository"
)

// Domain errors for application operations.
var (
	ErrNotFound      = errors.New("application not found")
	ErrDuplicate     = errors.New("application already exists")
	ErrMissingFields = errors.New("company and role_title are required")
	ErrInvalidStatus = errors.New("status must be one of Applied, Interviewing, Offer, Rejected, Ghosted, Withdrawn")
	ErrInvalidSource = errors.New("source must be one of LinkedIn, Indeed, Glassdoor, CompanyWebsite, Referral, Recruiter, Other")
	ErrInvalidDate   = errors.New("dates must be RFC 3339 timestamps or YYYY-MM-DD")
)

// MapHTTPStatus maps application domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidSource),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, pagination.ErrInvalidToken),
		errors.Is(err, handlers.ErrInvalidBody),
		errors.Is(err, handlers.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

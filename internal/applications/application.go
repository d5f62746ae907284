// Package applications implements job applications: the owner-scoped
// collection, its list filters, and status transitions.
package applications

import (
	"time"

	"github.com/google/uuid"
)

// Application is a job application owned by one user.
type Application struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Company     string    `json:"company"`
	RoleTitle   string    `json:"role_title"`
	Location    *string   `json:"location"`
	SalaryRange *string   `json:"salary_range"`
	AppliedDate time.Time `json:"applied_date"`
	Status      Status    `json:"status"`
	Source      Source    `json:"source"`
	URL         *string   `json:"url"`
	ResumeUsed  *string   `json:"resume_used"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand carries the fields of a new application. Status defaults
// to Applied, Source to Other and AppliedDate to the creation time.
type CreateCommand struct {
	Company     string    `json:"company"`
	RoleTitle   string    `json:"role_title"`
	Location    *string   `json:"location"`
	SalaryRange *string   `json:"salary_range"`
	AppliedDate time.Time `json:"applied_date"`
	Status      Status    `json:"status"`
	Source      Source    `json:"source"`
	URL         *string   `json:"url"`
	ResumeUsed  *string   `json:"resume_used"`
	Notes       *string   `json:"notes"`
}

// UpdateCommand is a merge patch. Company and RoleTitle apply only when
// non-empty; the remaining fields apply whenever present.
type UpdateCommand struct {
	Company     *string `json:"company"`
	RoleTitle   *string `json:"role_title"`
	Location    *string `json:"location"`
	SalaryRange *string `json:"salary_range"`
	URL         *string `json:"url"`
	ResumeUsed  *string `json:"resume_used"`
	Notes       *string `json:"notes"`
}

// Apply merges the patch into a.
func (c UpdateCommand) Apply(a *Application) {
	if c.Company != nil && *c.Company != "" {
		a.Company = *c.Company
	}
	if c.RoleTitle != nil && *c.RoleTitle != "" {
		a.RoleTitle = *c.RoleTitle
	}
	if c.Location != nil {
		a.Location = c.Location
	}
	if c.SalaryRange != nil {
		a.SalaryRange = c.SalaryRange
	}
	if c.URL != nil {
		a.URL = c.URL
	}
	if c.ResumeUsed != nil {
		a.ResumeUsed = c.ResumeUsed
	}
	if c.Notes != nil {
		a.Notes = c.Notes
	}
}

// StatusCommand moves an application to a new status.
type StatusCommand struct {
	NewStatus Status `json:"new_status"`
}

// Count is the response of the count endpoint.
type Count struct {
	Count int `json:"count"`
}

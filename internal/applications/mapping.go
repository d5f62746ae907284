package applications

import (
	"net/url"
	"strings"
	"time"

	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/query"
	"github.com/JaimeStill/jobtracker/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "applications", "a").
	Project("id", "ID").
	Project("user_id", "UserID").
	Project("company", "Company").
	Project("role_title", "RoleTitle").
	Project("location", "Location").
	Project("salary_range", "SalaryRange").
	Project("applied_date", "AppliedDate").
	Project("status", "Status").
	Project("source", "Source").
	Project("url", "URL").
	Project("resume_used", "ResumeUsed").
	Project("notes", "Notes").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var schema = repository.Schema[Application]{
	Projection: projection,
	ID:         "ID",
	Partition:  "UserID",
	Sort:       "AppliedDate",
	Mutable: []string{
		"Company", "RoleTitle", "Location", "SalaryRange", "AppliedDate",
		"Status", "Source", "URL", "ResumeUsed", "Notes", "UpdatedAt",
	},
	Scan: scanApplication,
	Cursor: func(a Application) pagination.Cursor {
		return pagination.Cursor{Sort: a.AppliedDate, ID: a.ID}
	},
}

// Filters narrows an application listing. Every set field adds a conjunctive
// predicate; an empty Filters lists the whole partition.
type Filters struct {
	// Statuses matches any of the listed statuses.
	Statuses []Status
	// Company matches a case-insensitive substring of the company.
	Company *string
	Source  *Source
	// AppliedFrom and AppliedTo bound the applied date, both inclusive.
	AppliedFrom *time.Time
	AppliedTo   *time.Time
	// Search matches a case-insensitive substring of company or role title.
	Search *string
}

// Apply adds the filter predicates to b.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	statuses := make([]any, len(f.Statuses))
	for i, s := range f.Statuses {
		statuses[i] = string(s)
	}
	b.WhereIn("Status", statuses).WhereContains("Company", f.Company)

	if f.Source != nil {
		b.WhereEquals("Source", string(*f.Source))
	}
	if f.AppliedFrom != nil {
		b.WhereOnOrAfter("AppliedDate", *f.AppliedFrom)
	}
	if f.AppliedTo != nil {
		b.WhereOnOrBefore("AppliedDate", *f.AppliedTo)
	}

	return b.WhereSearch(f.Search, "Company", "RoleTitle")
}

// FiltersFromQuery reads filters from the status (comma-separated), company,
// source, applied_from, applied_to and q query parameters.
func FiltersFromQuery(values url.Values) (Filters, error) {
	var f Filters

	if raw := values.Get("status"); raw != "" {
		for part := range strings.SplitSeq(raw, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			s, err := ParseStatus(part)
			if err != nil {
				return Filters{}, err
			}
			f.Statuses = append(f.Statuses, s)
		}
	}

	if c := values.Get("company"); c != "" {
		f.Company = &c
	}

	if raw := values.Get("source"); raw != "" {
		s, err := ParseSource(raw)
		if err != nil {
			return Filters{}, err
		}
		f.Source = &s
	}

	var err error
	if f.AppliedFrom, err = parseDate(values.Get("applied_from")); err != nil {
		return Filters{}, err
	}
	if f.AppliedTo, err = parseDate(values.Get("applied_to")); err != nil {
		return Filters{}, err
	}

	if q := values.Get("q"); q != "" {
		f.Search = &q
	}

	return f, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			t = repository.Timestamp(t)
			return &t, nil
		}
	}
	return nil, ErrInvalidDate
}

func scanApplication(s repository.Scanner) (Application, error) {
	var a Application
	err := s.Scan(
		&a.ID,
		&a.UserID,
		&a.Company,
		&a.RoleTitle,
		&a.Location,
		&a.SalaryRange,
		&a.AppliedDate,
		&a.Status,
		&a.Source,
		&a.URL,
		&a.ResumeUsed,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// insertValues lists a's fields in projection order.
func insertValues(a *Application) []any {
	return []any{
		a.ID,
		a.UserID,
		a.Company,
		a.RoleTitle,
		a.Location,
		a.SalaryRange,
		a.AppliedDate,
		string(a.Status),
		string(a.Source),
		a.URL,
		a.ResumeUsed,
		a.Notes,
		a.CreatedAt,
		a.UpdatedAt,
	}
}

// mutableValues lists a's fields in schema.Mutable order.
func mutableValues(a *Application) []any {
	return []any{
		a.Company,
		a.RoleTitle,
		a.Location,
		a.SalaryRange,
		a.AppliedDate,
		string(a.Status),
		string(a.Source),
		a.URL,
		a.ResumeUsed,
		a.Notes,
		a.UpdatedAt,
	}
}

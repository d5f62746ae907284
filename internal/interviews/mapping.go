package interviews

import (
	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/query"
	"github.com/JaimeStill/jobtracker/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "interviews", "i").
	Project("id", "ID").
	Project("application_id", "ApplicationID").
	Project("date", "Date").
	Project("interviewer", "Interviewer").
	Project("type", "Type").
	Project("notes", "Notes").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var schema = repository.Schema[Interview]{
	Projection: projection,
	ID:         "ID",
	Partition:  "ApplicationID",
	Sort:       "Date",
	Mutable:    []string{"Date", "Interviewer", "Type", "Notes", "UpdatedAt"},
	Scan:       scanInterview,
	Cursor: func(i Interview) pagination.Cursor {
		return pagination.Cursor{Sort: i.Date, ID: i.ID}
	},
}

func scanInterview(s repository.Scanner) (Interview, error) {
	var i Interview
	err := s.Scan(
		&i.ID,
		&i.ApplicationID,
		&i.Date,
		&i.Interviewer,
		&i.Type,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func insertValues(i *Interview) []any {
	return []any{
		i.ID,
		i.ApplicationID,
		i.Date,
		i.Interviewer,
		string(i.Type),
		i.Notes,
		i.CreatedAt,
		i.UpdatedAt,
	}
}

func mutableValues(i *Interview) []any {
	return []any{
		i.Date,
		i.Interviewer,
		string(i.Type),
		i.Notes,
		i.UpdatedAt,
	}
}

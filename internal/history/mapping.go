package history

import (
	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/query"
	"github.com/JaimeStill/jobtracker/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "status_history", "h").
	Project("id", "ID").
	Project("application_id", "ApplicationID").
	Project("old_status", "OldStatus").
	Project("new_status", "NewStatus").
	Project("changed_at", "ChangedAt")

var schema = repository.Schema[Entry]{
	Projection: projection,
	ID:         "ID",
	Partition:  "ApplicationID",
	Sort:       "ChangedAt",
	Mutable:    []string{"OldStatus", "NewStatus", "ChangedAt"},
	Scan:       scanEntry,
	Cursor: func(e Entry) pagination.Cursor {
		return pagination.Cursor{Sort: e.ChangedAt, ID: e.ID}
	},
}

func scanEntry(s repository.Scanner) (Entry, error) {
	var e Entry
	err := s.Scan(&e.ID, &e.ApplicationID, &e.OldStatus, &e.NewStatus, &e.ChangedAt)
	return e, err
}

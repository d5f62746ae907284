package attachments

import (
	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/query"
	"github.com/JaimeStill/jobtracker/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "attachments", "t").
	Project("id", "ID").
	Project("application_id", "ApplicationID").
	Project("type", "Type").
	Project("file_name", "FileName").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("storage_path", "StoragePath").
	Project("uploaded_at", "UploadedAt")

// Attachments are write-once; Replace is never used.
var schema = repository.Schema[Attachment]{
	Projection: projection,
	ID:         "ID",
	Partition:  "ApplicationID",
	Sort:       "UploadedAt",
	Scan:       scanAttachment,
	Cursor: func(a Attachment) pagination.Cursor {
		return pagination.Cursor{Sort: a.UploadedAt, ID: a.ID}
	},
}

func scanAttachment(s repository.Scanner) (Attachment, error) {
	var a Attachment
	err := s.Scan(
		&a.ID,
		&a.ApplicationID,
		&a.Type,
		&a.FileName,
		&a.ContentType,
		&a.SizeBytes,
		&a.StoragePath,
		&a.UploadedAt,
	)
	return a, err
}

func insertValues(a *Attachment) []any {
	return []any{
		a.ID,
		a.ApplicationID,
		a.Type,
		a.FileName,
		a.ContentType,
		a.SizeBytes,
		a.StoragePath,
		a.UploadedAt,
	}
}

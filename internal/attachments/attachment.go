// Package attachments records files attached to an application. File bytes
// travel directly between the client and object storage through signed URLs.
package attachments

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultType tags attachments confirmed without a type.
const DefaultType = "Document"

// Attachment is the record of a confirmed upload.
type Attachment struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	Type          string    `json:"type"`
	FileName      string    `json:"file_name"`
	ContentType   string    `json:"content_type"`
	SizeBytes     int64     `json:"size_bytes"`
	StoragePath   string    `json:"storage_path"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

// UploadRequest asks for a signed upload URL.
type UploadRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	Type        string `json:"type"`
}

// UploadTicket is the signed upload URL and the identity the upload will be
// confirmed under.
type UploadTicket struct {
	UploadURL    string            `json:"upload_url"`
	StoragePath  string            `json:"storage_path"`
	Headers      map[string]string `json:"headers"`
	AttachmentID uuid.UUID         `json:"attachment_id"`
	ExpiresAt    time.Time         `json:"expires_at"`
}

// ConfirmCommand records an upload made with an UploadTicket.
type ConfirmCommand struct {
	AttachmentID uuid.UUID `json:"attachment_id"`
	FileName     string    `json:"file_name"`
	Type         string    `json:"type"`
}

// DownloadTicket is a signed download URL.
type DownloadTicket struct {
	DownloadURL string    `json:"download_url"`
	FileName    string    `json:"file_name"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// StoragePath derives the object key of an attachment. The key is fixed at
// upload time and never rewritten.
func StoragePath(userID, applicationID, attachmentID uuid.UUID, fileName string) string {
	return fmt.Sprintf("%s/%s/%s-%s", userID, applicationID, attachmentID, fileName)
}

func validateFileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMissingFields
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return ErrInvalidFileName
	}
	return nil
}

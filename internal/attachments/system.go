package attachments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
)

// Limits bounds uploads and the lifetime of signed URLs.
type Limits struct {
	MaxSize        int64
	UploadExpiry   time.Duration
	DownloadExpiry time.Duration
}

// System defines attachment operations within one application's partition.
// Callers verify ownership of the application before invoking them.
type System interface {
	Handler(apps applications.System) *Handler

	// PresignUpload reserves an attachment id and signs an upload URL for it.
	// Nothing is recorded until Confirm.
	PresignUpload(ctx context.Context, userID, applicationID uuid.UUID, req UploadRequest) (*UploadTicket, error)
	// Confirm verifies the uploaded object exists and records it with the
	// stored content type and size.
	Confirm(ctx context.Context, userID, applicationID uuid.UUID, cmd ConfirmCommand) (*Attachment, error)

	List(ctx context.Context, applicationID uuid.UUID, page pagination.PageRequest) (*pagination.Page[Attachment], error)
	Find(ctx context.Context, id, applicationID uuid.UUID) (*Attachment, error)
	PresignDownload(ctx context.Context, id, applicationID uuid.UUID) (*DownloadTicket, error)

	// Delete removes the stored object, tolerating one that is already
	// gone, then the record.
	Delete(ctx context.Context, id, applicationID uuid.UUID) error
	Count(ctx context.Context, applicationID uuid.UUID) (int, error)
}

package attachments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/formatting"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/repository"
	"github.com/JaimeStill/jobtracker/pkg/storage"
)

type repo struct {
	items      *repository.Collection[Attachment]
	store      storage.System
	limits     Limits
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the attachment system over db and the object store.
func New(
	db *sql.DB,
	store storage.System,
	limits Limits,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		items:      repository.NewCollection(db, schema, ErrNotFound, ErrDuplicate),
		store:      store,
		limits:     limits,
		logger:     logger.With("system", "attachments"),
		pagination: pagination,
	}
}

func (r *repo) Handler(apps applications.System) *Handler {
	return NewHandler(r, apps, r.logger, r.pagination)
}

func (r *repo) PresignUpload(ctx context.Context, userID, applicationID uuid.UUID, req UploadRequest) (*UploadTicket, error) {
	if err := validateFileName(req.FileName); err != nil {
		return nil, err
	}
	if req.SizeBytes < 0 {
		return nil, ErrInvalidSize
	}
	if req.SizeBytes > r.limits.MaxSize {
		return nil, fmt.Errorf("%w: %s over %s", ErrTooLarge,
			formatting.FormatBytes(req.SizeBytes), formatting.FormatBytes(r.limits.MaxSize))
	}

	contentType := strings.TrimSpace(req.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	id := uuid.New()
	key := StoragePath(userID, applicationID, id, req.FileName)

	signed, err := r.store.UploadURL(ctx, key, contentType, r.limits.UploadExpiry)
	if err != nil {
		return nil, fmt.Errorf("sign upload url: %w", err)
	}

	return &UploadTicket{
		UploadURL:    signed.URL,
		StoragePath:  key,
		Headers:      signed.Headers,
		AttachmentID: id,
		ExpiresAt:    signed.ExpiresAt,
	}, nil
}

func (r *repo) Confirm(ctx context.Context, userID, applicationID uuid.UUID, cmd ConfirmCommand) (*Attachment, error) {
	if cmd.AttachmentID == uuid.Nil {
		return nil, ErrMissingFields
	}
	if err := validateFileName(cmd.FileName); err != nil {
		return nil, err
	}

	key := StoragePath(userID, applicationID, cmd.AttachmentID, cmd.FileName)

	obj, err := r.store.Find(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotUploaded
		}
		return nil, fmt.Errorf("find uploaded object: %w", err)
	}

	if obj.ContentLength > r.limits.MaxSize {
		if err := r.store.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFound) {
			r.logger.Error("failed to remove oversized upload", "key", key, "error", err)
		}
		return nil, fmt.Errorf("%w: %s over %s", ErrTooLarge,
			formatting.FormatBytes(obj.ContentLength), formatting.FormatBytes(r.limits.MaxSize))
	}

	typ := strings.TrimSpace(cmd.Type)
	if typ == "" {
		typ = DefaultType
	}
	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	a := Attachment{
		ID:            cmd.AttachmentID,
		ApplicationID: applicationID,
		Type:          typ,
		FileName:      cmd.FileName,
		ContentType:   contentType,
		SizeBytes:     obj.ContentLength,
		StoragePath:   key,
		UploadedAt:    repository.Now(),
	}

	created, err := r.items.Create(ctx, insertValues(&a))
	if err != nil {
		return nil, fmt.Errorf("record attachment: %w", err)
	}

	r.logger.Info("attachment confirmed",
		"id", created.ID,
		"application_id", applicationID,
		"size", formatting.FormatBytes(created.SizeBytes),
	)
	return created, nil
}

func (r *repo) List(ctx context.Context, applicationID uuid.UUID, page pagination.PageRequest) (*pagination.Page[Attachment], error) {
	page.Normalize(r.pagination, r.pagination.ChildPageSize)

	result, err := r.items.List(ctx, applicationID, page, nil)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	return result, nil
}

func (r *repo) Find(ctx context.Context, id, applicationID uuid.UUID) (*Attachment, error) {
	a, err := r.items.Get(ctx, id, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get attachment: %w", err)
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (r *repo) PresignDownload(ctx context.Context, id, applicationID uuid.UUID) (*DownloadTicket, error) {
	a, err := r.Find(ctx, id, applicationID)
	if err != nil {
		return nil, err
	}

	signed, err := r.store.DownloadURL(ctx, a.StoragePath, a.FileName, r.limits.DownloadExpiry)
	if err != nil {
		return nil, fmt.Errorf("sign download url: %w", err)
	}

	return &DownloadTicket{
		DownloadURL: signed.URL,
		FileName:    a.FileName,
		ExpiresAt:   signed.ExpiresAt,
	}, nil
}

func (r *repo) Delete(ctx context.Context, id, applicationID uuid.UUID) error {
	a, err := r.Find(ctx, id, applicationID)
	if err != nil {
		return err
	}

	if err := r.store.Delete(ctx, a.StoragePath); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("delete object: %w", err)
	}

	if err := r.items.Delete(ctx, id, applicationID); err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}

	r.logger.Info("attachment deleted", "id", id, "key", a.StoragePath)
	return nil
}

func (r *repo) Count(ctx context.Context, applicationID uuid.UUID) (int, error) {
	n, err := r.items.Count(ctx, applicationID)
	if err != nil {
		return 0, fmt.Errorf("count attachments: %w", err)
	}
	return n, nil
}

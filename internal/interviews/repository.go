package interviews

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/repository"
)

type repo struct {
	items      *repository.Collection[Interview]
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the interview system.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		items:      repository.NewCollection(db, schema, ErrNotFound, ErrDuplicate),
		logger:     logger.With("system", "interviews"),
		pagination: pagination,
	}
}

func (r *repo) Handler(apps applications.System) *Handler {
	return NewHandler(r, apps, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, applicationID uuid.UUID, page pagination.PageRequest) (*pagination.Page[Interview], error) {
	page.Normalize(r.pagination, r.pagination.ChildPageSize)

	result, err := r.items.List(ctx, applicationID, page, nil)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	return result, nil
}

func (r *repo) Find(ctx context.Context, id, applicationID uuid.UUID) (*Interview, error) {
	i, err := r.items.Get(ctx, id, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get interview: %w", err)
	}
	if i == nil {
		return nil, ErrNotFound
	}
	return i, nil
}

func (r *repo) Create(ctx context.Context, applicationID uuid.UUID, cmd CreateCommand) (*Interview, error) {
	if cmd.Date.IsZero() || cmd.Type == "" {
		return nil, ErrMissingFields
	}

	now := repository.Now()
	i := Interview{
		ID:            uuid.New(),
		ApplicationID: applicationID,
		Date:          repository.Timestamp(cmd.Date),
		Interviewer:   cmd.Interviewer,
		Type:          cmd.Type,
		Notes:         cmd.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := r.items.Create(ctx, insertValues(&i))
	if err != nil {
		return nil, fmt.Errorf("create interview: %w", err)
	}

	r.logger.Info("interview created", "id", created.ID, "application_id", applicationID)
	return created, nil
}

func (r *repo) Update(ctx context.Context, id, applicationID uuid.UUID, cmd UpdateCommand) (*Interview, error) {
	i, err := r.Find(ctx, id, applicationID)
	if err != nil {
		return nil, err
	}

	cmd.Apply(i)
	i.Date = repository.Timestamp(i.Date)
	i.UpdatedAt = repository.Now()

	updated, err := r.items.Replace(ctx, i.ID, applicationID, mutableValues(i))
	if err != nil {
		return nil, fmt.Errorf("update interview: %w", err)
	}
	return updated, nil
}

func (r *repo) Delete(ctx context.Context, id, applicationID uuid.UUID) error {
	if err := r.items.Delete(ctx, id, applicationID); err != nil {
		return fmt.Errorf("delete interview: %w", err)
	}

	r.logger.Info("interview deleted", "id", id)
	return nil
}

func (r *repo) Count(ctx context.Context, applicationID uuid.UUID) (int, error) {
	n, err := r.items.Count(ctx, applicationID)
	if err != nil {
		return 0, fmt.Errorf("count interviews: %w", err)
	}
	return n, nil
}

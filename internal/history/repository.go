package history

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
	entries    *repository.Collection[Entry]
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the status history system.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		entries:    repository.NewCollection(db, schema, ErrNotFound, ErrDuplicate),
		logger:     logger.With("system", "history"),
		pagination: pagination,
	}
}

func (r *repo) Handler(apps applications.System) *Handler {
	return NewHandler(r, apps, r.logger, r.pagination)
}

func (r *repo) Record(ctx context.Context, applicationID uuid.UUID, from, to applications.Status) error {
	values := []any{
		uuid.New(),
		applicationID,
		string(from),
		string(to),
		repository.Now(),
	}

	if _, err := r.entries.Create(ctx, values); err != nil {
		return fmt.Errorf("record status change: %w", err)
	}
	return nil
}

func (r *repo) List(ctx context.Context, applicationID uuid.UUID, page pagination.PageRequest) (*pagination.Page[Entry], error) {
	page.Normalize(r.pagination, r.pagination.ChildPageSize)

	result, err := r.entries.List(ctx, applicationID, page, nil)
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}
	return result, nil
}

func (r *repo) Count(ctx context.Context, applicationID uuid.UUID) (int, error) {
	n, err := r.entries.Count(ctx, applicationID)
	if err != nil {
		return 0, fmt.Errorf("count status history: %w", err)
	}
	return n, nil
}

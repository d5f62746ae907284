package applications

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/query"
	"github.com/JaimeStill/jobtracker/pkg/repository"
)

type repo struct {
	items      *repository.Collection[Application]
	recorder   StatusRecorder
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the application system. recorder receives every status
// transition made through UpdateStatus.
func New(
	db *sql.DB,
	recorder StatusRecorder,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		items:      repository.NewCollection(db, schema, ErrNotFound, ErrDuplicate),
		recorder:   recorder,
		logger:     logger.With("system", "applications"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, userID uuid.UUID, page pagination.PageRequest, filters Filters) (*pagination.Page[Application], error) {
	page.Normalize(r.pagination, r.pagination.DefaultPageSize)

	result, err := r.items.List(ctx, userID, page, func(b *query.Builder) {
		filters.Apply(b)
	})
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return result, nil
}

func (r *repo) Find(ctx context.Context, id, userID uuid.UUID) (*Application, error) {
	a, err := r.items.Get(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (r *repo) Create(ctx context.Context, userID uuid.UUID, cmd CreateCommand) (*Application, error) {
	cmd.Company = strings.TrimSpace(cmd.Company)
	cmd.RoleTitle = strings.TrimSpace(cmd.RoleTitle)
	if cmd.Company == "" || cmd.RoleTitle == "" {
		return nil, ErrMissingFields
	}

	now := repository.Now()

	a := Application{
		ID:          uuid.New(),
		UserID:      userID,
		Company:     cmd.Company,
		RoleTitle:   cmd.RoleTitle,
		Location:    cmd.Location,
		SalaryRange: cmd.SalaryRange,
		AppliedDate: repository.Timestamp(cmd.AppliedDate),
		Status:      cmd.Status,
		Source:      cmd.Source,
		URL:         cmd.URL,
		ResumeUsed:  cmd.ResumeUsed,
		Notes:       cmd.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if cmd.AppliedDate.IsZero() {
		a.AppliedDate = now
	}
	if a.Status == "" {
		a.Status = StatusApplied
	}
	if a.Source == "" {
		a.Source = SourceOther
	}

	created, err := r.items.Create(ctx, insertValues(&a))
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	r.logger.Info("application created", "id", created.ID, "user_id", userID)
	return created, nil
}

func (r *repo) Update(ctx context.Context, id, userID uuid.UUID, cmd UpdateCommand) (*Application, error) {
	a, err := r.Find(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	cmd.Apply(a)
	return r.replace(ctx, a)
}

func (r *repo) UpdateStatus(ctx context.Context, id, userID uuid.UUID, status Status) (*Application, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	a, err := r.Find(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := r.recorder.Record(ctx, a.ID, a.Status, status); err != nil {
		return nil, fmt.Errorf("record status change: %w", err)
	}

	r.logger.Info("application status changed", "id", a.ID, "from", a.Status, "to", status)

	a.Status = status
	return r.replace(ctx, a)
}

func (r *repo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := r.items.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}

	r.logger.Info("application deleted", "id", id)
	return nil
}

func (r *repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := r.items.Count(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return n, nil
}

func (r *repo) replace(ctx context.Context, a *Application) (*Application, error) {
	a.UpdatedAt = repository.Now()

	updated, err := r.items.Replace(ctx, a.ID, a.UserID, mutableValues(a))
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	return updated, nil
}

package applications

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/pkg/pagination"
)

// System defines the application domain operations. Every operation is
// scoped to the owning user; an application owned by someone else is
// reported as ErrNotFound.
type System interface {
	Handler() *Handler

	List(ctx context.Context, userID uuid.UUID, page pagination.PageRequest, filters Filters) (*pagination.Page[Application], error)
	Find(ctx context.Context, id, userID uuid.UUID) (*Application, error)
	Create(ctx context.Context, userID uuid.UUID, cmd CreateCommand) (*Application, error)
	Update(ctx context.Context, id, userID uuid.UUID, cmd UpdateCommand) (*Application, error)

	// UpdateStatus records the transition with the StatusRecorder, then
	// stores the application with its new status.
	UpdateStatus(ctx context.Context, id, userID uuid.UUID, status Status) (*Application, error)

	// Delete removes the application only. Interviews, status history and
	// attachments are left in place.
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

// StatusRecorder appends status transitions to an application's history.
type StatusRecorder interface {
	Record(ctx context.Context, applicationID uuid.UUID, from, to Status) error
}

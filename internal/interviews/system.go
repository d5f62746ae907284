package interviews

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
)

// System defines interview operations within one application's partition.
// Callers verify ownership of the application before invoking them.
type System interface {
	Handler(apps applications.System) *Handler

	List(ctx context.Context, applicationID uuid.UUID, page pagination.PageRequest) (*pagination.Page[Interview], error)
	Find(ctx context.Context, id, applicationID uuid.UUID) (*Interview, error)
	Create(ctx context.Context, applicationID uuid.UUID, cmd CreateCommand) (*Interview, error)
	Update(ctx context.Context, id, applicationID uuid.UUID, cmd UpdateCommand) (*Interview, error)
	Delete(ctx context.Context, id, applicationID uuid.UUID) error
	Count(ctx context.Context, applicationID uuid.UUID) (int, error)
}

package history

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
)

// System defines the status history operations. It satisfies
// applications.StatusRecorder.
type System interface {
	Handler(apps applications.System) *Handler

	Record(ctx context.Context, applicationID uuid.UUID, from, to applications.Status) error
	List(ctx context.Context, applicationID uuid.UUID, page pagination.PageRequest) (*pagination.Page[Entry], error)
	Count(ctx context.Context, applicationID uuid.UUID) (int, error)
}

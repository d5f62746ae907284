// Package apptest provides an in-memory applications.System for handler
// tests of the child resources.
package apptest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
)

// Apps holds applications in memory keyed by id. Only ownership lookups
// and creation are supported; other operations return ErrNotFound.
type Apps struct {
	mu    sync.Mutex
	items map[uuid.UUID]applications.Application
}

// New returns an empty Apps.
func New() *Apps {
	return &Apps{items: make(map[uuid.UUID]applications.Application)}
}

// Add stores an application owned by userID and returns its id.
func (a *Apps) Add(userID uuid.UUID) uuid.UUID {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := uuid.New()
	a.items[id] = applications.Application{
		ID:        id,
		UserID:    userID,
		Company:   "Acme",
		RoleTitle: "Engineer",
		Status:    applications.StatusApplied,
		Source:    applications.SourceOther,
	}
	return id
}

func (a *Apps) Handler() *applications.Handler { return nil }

func (a *Apps) Find(_ context.Context, id, userID uuid.UUID) (*applications.Application, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	app, ok := a.items[id]
	if !ok || app.UserID != userID {
		return nil, applications.ErrNotFound
	}
	return &app, nil
}

func (a *Apps) List(context.Context, uuid.UUID, pagination.PageRequest, applications.Filters) (*pagination.Page[applications.Application], error) {
	return pagination.NewPage[applications.Application](nil, nil), nil
}

func (a *Apps) Create(_ context.Context, userID uuid.UUID, _ applications.CreateCommand) (*applications.Application, error) {
	return a.Find(context.Background(), a.Add(userID), userID)
}

func (a *Apps) Update(context.Context, uuid.UUID, uuid.UUID, applications.UpdateCommand) (*applications.Application, error) {
	return nil, applications.ErrNotFound
}

func (a *Apps) UpdateStatus(context.Context, uuid.UUID, uuid.UUID, applications.Status) (*applications.Application, error) {
	return nil, applications.ErrNotFound
}

func (a *Apps) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return applications.ErrNotFound
}

func (a *Apps) Count(context.Context, uuid.UUID) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.items), nil
}

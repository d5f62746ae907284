// Package overview summarizes an application together with the sizes of
// its child collections.
package overview

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/jobtracker/internal/applications"
)

// Overview is an application with the number of its interviews,
// attachments and recorded status changes.
type Overview struct {
	Application   applications.Application `json:"application"`
	Interviews    int                      `json:"interviews"`
	Attachments   int                      `json:"attachments"`
	StatusChanges int                      `json:"status_changes"`
}

// Counter counts the records in one application's partition.
type Counter interface {
	Count(ctx context.Context, applicationID uuid.UUID) (int, error)
}

// System builds application overviews.
type System interface {
	Handler() *Handler
	Get(ctx context.Context, id, userID uuid.UUID) (*Overview, error)
}

type system struct {
	apps        applications.System
	interviews  Counter
	attachments Counter
	history     Counter
	logger      *slog.Logger
}

// New creates the overview system.
func New(
	apps applications.System,
	interviews, attachments, history Counter,
	logger *slog.Logger,
) System {
	return &system{
		apps:        apps,
		interviews:  interviews,
		attachments: attachments,
		history:     history,
		logger:      logger.With("system", "overview"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Get verifies ownership, then counts the child collections concurrently.
// The first failing count cancels the others.
func (s *system) Get(ctx context.Context, id, userID uuid.UUID) (*Overview, error) {
	app, err := s.apps.Find(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	o := &Overview{Application: *app}

	g, gctx := errgroup.WithContext(ctx)

	counts := []struct {
		name    string
		counter Counter
		dst     *int
	}{
		{"interviews", s.interviews, &o.Interviews},
		{"attachments", s.attachments, &o.Attachments},
		{"status history", s.history, &o.StatusChanges},
	}

	for _, c := range counts {
		g.Go(func() error {
			n, err := c.counter.Count(gctx, id)
			if err != nil {
				return fmt.Errorf("count %s: %w", c.name, err)
			}
			*c.dst = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return o, nil
}

package applications_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/internal/dbtest"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
)

type transition struct {
	id       uuid.UUID
	from, to applications.Status
}

type recorder struct {
	mu   sync.Mutex
	seen []transition
}

func (r *recorder) Record(_ context.Context, id uuid.UUID, from, to applications.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, transition{id, from, to})
	return nil
}

func newSystem(t *testing.T) (applications.System, *recorder) {
	t.Helper()
	rec := &recorder{}
	return applications.New(dbtest.Open(t), rec, discard(), testPagination()), rec
}

func create(t *testing.T, sys applications.System, userID uuid.UUID, company string, applied time.Time) *applications.Application {
	t.Helper()
	a, err := sys.Create(context.Background(), userID, applications.CreateCommand{
		Company:     company,
		RoleTitle:   "Engineer",
		AppliedDate: applied,
	})
	if err != nil {
		t.Fatalf("Create(%s) error = %v", company, err)
	}
	return a
}

func TestCreateDefaults(t *testing.T) {
	sys, _ := newSystem(t)
	userID := uuid.New()

	a, err := sys.Create(context.Background(), userID, applications.CreateCommand{Company: "Acme", RoleTitle: "Engineer"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if a.UserID != userID {
		t.Errorf("UserID = %s, want %s", a.UserID, userID)
	}
	if a.Status != applications.StatusApplied || a.Source != applications.SourceOther {
		t.Errorf("Status, Source = %s, %s; want Applied, Other", a.Status, a.Source)
	}
	if !a.CreatedAt.Equal(a.UpdatedAt) {
		t.Errorf("CreatedAt %v != UpdatedAt %v", a.CreatedAt, a.UpdatedAt)
	}
	if !a.AppliedDate.Equal(a.CreatedAt) {
		t.Errorf("AppliedDate = %v, want creation time %v", a.AppliedDate, a.CreatedAt)
	}

	if _, err := sys.Create(context.Background(), userID, applications.CreateCommand{Company: "  "}); !errors.Is(err, applications.ErrMissingFields) {
		t.Errorf("Create(blank) error = %v, want ErrMissingFields", err)
	}
}

func TestUpdateStatusRecordsTransition(t *testing.T) {
	sys, rec := newSystem(t)
	ctx := context.Background()
	userID := uuid.New()

	a := create(t, sys, userID, "Acme", time.Now())

	updated, err := sys.UpdateStatus(ctx, a.ID, userID, applications.StatusInterviewing)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != applications.StatusInterviewing {
		t.Errorf("Status = %s, want Interviewing", updated.Status)
	}
	if updated.UpdatedAt.Before(a.UpdatedAt) {
		t.Errorf("UpdatedAt went backwards: %v < %v", updated.UpdatedAt, a.UpdatedAt)
	}

	if len(rec.seen) != 1 {
		t.Fatalf("recorded %d transitions, want 1", len(rec.seen))
	}
	if got := rec.seen[0]; got != (transition{a.ID, applications.StatusApplied, applications.StatusInterviewing}) {
		t.Errorf("transition = %+v", got)
	}

	if _, err := sys.UpdateStatus(ctx, a.ID, userID, "Hired"); !errors.Is(err, applications.ErrInvalidStatus) {
		t.Errorf("UpdateStatus(Hired) error = %v, want ErrInvalidStatus", err)
	}
	if _, err := sys.UpdateStatus(ctx, uuid.New(), userID, applications.StatusOffer); !errors.Is(err, applications.ErrNotFound) {
		t.Errorf("UpdateStatus(absent) error = %v, want ErrNotFound", err)
	}
	if len(rec.seen) != 1 {
		t.Errorf("failed updates recorded transitions: %+v", rec.seen)
	}
}

func TestListFilters(t *testing.T) {
	sys, _ := newSystem(t)
	ctx := context.Background()
	userID := uuid.New()

	create(t, sys, userID, "Acme Corp", time.Now())

	tests := []struct {
		name    string
		company string
		want    int
	}{
		{"substring match", "acm", 1},
		{"no match", "zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			company := tt.company
			page, err := sys.List(ctx, userID, pagination.PageRequest{}, applications.Filters{Company: &company})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if page.Count != tt.want {
				t.Errorf("Count = %d, want %d", page.Count, tt.want)
			}
		})
	}
}

func TestListPagination(t *testing.T) {
	sys, _ := newSystem(t)
	ctx := context.Background()
	userID := uuid.New()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := range 5 {
		create(t, sys, userID, "Company", base.Add(time.Duration(i)*time.Hour))
	}

	seen := map[uuid.UUID]bool{}
	req := pagination.PageRequest{PageSize: 2}
	var last time.Time

	for pages := 0; ; pages++ {
		if pages > 3 {
			t.Fatal("pagination did not terminate")
		}

		page, err := sys.List(ctx, userID, req, applications.Filters{})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}

		for _, a := range page.Items {
			if seen[a.ID] {
				t.Errorf("item %s returned twice", a.ID)
			}
			if !last.IsZero() && a.AppliedDate.After(last) {
				t.Errorf("items not newest first: %v after %v", a.AppliedDate, last)
			}
			seen[a.ID] = true
			last = a.AppliedDate
		}

		if page.ContinuationToken == nil {
			break
		}
		req.ContinuationToken = page.ContinuationToken
	}

	if len(seen) != 5 {
		t.Errorf("saw %d items, want 5", len(seen))
	}

	n, err := sys.Count(ctx, userID)
	if err != nil || n != 5 {
		t.Errorf("Count() = %d, %v; want 5", n, err)
	}
}

func TestOwnership(t *testing.T) {
	sys, _ := newSystem(t)
	ctx := context.Background()
	owner, other := uuid.New(), uuid.New()

	a := create(t, sys, owner, "Acme", time.Now())

	if _, err := sys.Find(ctx, a.ID, other); !errors.Is(err, applications.ErrNotFound) {
		t.Errorf("Find(other) error = %v, want ErrNotFound", err)
	}

	notes := "mine"
	if _, err := sys.Update(ctx, a.ID, other, applications.UpdateCommand{Notes: &notes}); !errors.Is(err, applications.ErrNotFound) {
		t.Errorf("Update(other) error = %v, want ErrNotFound", err)
	}
	if err := sys.Delete(ctx, a.ID, other); !errors.Is(err, applications.ErrNotFound) {
		t.Errorf("Delete(other) error = %v, want ErrNotFound", err)
	}

	page, err := sys.List(ctx, other, pagination.PageRequest{}, applications.Filters{})
	if err != nil {
		t.Fatalf("List(other) error = %v", err)
	}
	if page.Count != 0 {
		t.Errorf("List(other) = %d items, want none", page.Count)
	}

	if err := sys.Delete(ctx, a.ID, owner); err != nil {
		t.Errorf("Delete(owner) error = %v", err)
	}
	if _, err := sys.Find(ctx, a.ID, owner); !errors.Is(err, applications.ErrNotFound) {
		t.Errorf("Find(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestUpdateMergePatch(t *testing.T) {
	sys, _ := newSystem(t)
	ctx := context.Background()
	userID := uuid.New()

	a := create(t, sys, userID, "Acme", time.Now())

	blank := ""
	url := "https://acme.example/jobs/1"
	updated, err := sys.Update(ctx, a.ID, userID, applications.UpdateCommand{Company: &blank, URL: &url})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Company != "Acme" {
		t.Errorf("Company = %q, want unchanged", updated.Company)
	}
	if updated.URL == nil || *updated.URL != url {
		t.Errorf("URL = %v, want %s", updated.URL, url)
	}
	if !updated.CreatedAt.Equal(a.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", a.CreatedAt, updated.CreatedAt)
	}
}

package interviews_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/internal/apptest"
	"github.com/JaimeStill/jobtracker/internal/dbtest"
	"github.com/JaimeStill/jobtracker/internal/interviews"
	"github.com/JaimeStill/jobtracker/pkg/auth"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/routes"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPagination() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, ChildPageSize: 50, MaxPageSize: 100}
}

type mockSystem struct {
	createFn func(ctx context.Context, appID uuid.UUID, cmd interviews.CreateCommand) (*interviews.Interview, error)
	updateFn func(ctx context.Context, id, appID uuid.UUID, cmd interviews.UpdateCommand) (*interviews.Interview, error)
	deleteFn func(ctx context.Context, id, appID uuid.UUID) error
}

func (m *mockSystem) Handler(apps applications.System) *interviews.Handler {
	return interviews.NewHandler(m, apps, discard(), testPagination())
}

func (m *mockSystem) List(context.Context, uuid.UUID, pagination.PageRequest) (*pagination.Page[interviews.Interview], error) {
	return pagination.NewPage[interviews.Interview](nil, nil), nil
}

func (m *mockSystem) Find(_ context.Context, id, appID uuid.UUID) (*interviews.Interview, error) {
	return &interviews.Interview{ID: id, ApplicationID: appID}, nil
}

func (m *mockSystem) Create(ctx context.Context, appID uuid.UUID, cmd interviews.CreateCommand) (*interviews.Interview, error) {
	return m.createFn(ctx, appID, cmd)
}

func (m *mockSystem) Update(ctx context.Context, id, appID uuid.UUID, cmd interviews.UpdateCommand) (*interviews.Interview, error) {
	return m.updateFn(ctx, id, appID, cmd)
}

func (m *mockSystem) Delete(ctx context.Context, id, appID uuid.UUID) error {
	return m.deleteFn(ctx, id, appID)
}

func (m *mockSystem) Count(context.Context, uuid.UUID) (int, error) { return 0, nil }

func serve(sys *mockSystem, apps applications.System, caller uuid.UUID, method, path, body string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler(apps).Routes())

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req = req.WithContext(auth.WithPrincipal(req.Context(), auth.Principal{UserID: caller}))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandlerOwnership(t *testing.T) {
	owner := uuid.New()
	apps := apptest.New()
	appID := apps.Add(owner)
	base := "/applications/" + appID.String() + "/interviews"

	tests := []struct {
		name   string
		method string
		path   string
		caller uuid.UUID
		status int
	}{
		{"owner list", "GET", base, owner, http.StatusOK},
		{"foreign list", "GET", base, uuid.New(), http.StatusNotFound},
		{"owner find", "GET", base + "/" + uuid.NewString(), owner, http.StatusOK},
		{"foreign find", "GET", base + "/" + uuid.NewString(), uuid.New(), http.StatusNotFound},
		{"invalid interview id", "GET", base + "/x", owner, http.StatusBadRequest},
		{"invalid application id", "GET", "/applications/x/interviews", owner, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&mockSystem{}, apps, tt.caller, tt.method, tt.path, "")
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestHandlerCreate(t *testing.T) {
	owner := uuid.New()
	apps := apptest.New()
	appID := apps.Add(owner)
	path := "/applications/" + appID.String() + "/interviews"

	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"created", `{"date":"2024-02-01T15:00:00Z","type":"onsite"}`, nil, http.StatusCreated},
		{"unknown type", `{"date":"2024-02-01T15:00:00Z","type":"Lunch"}`, nil, http.StatusBadRequest},
		{"missing fields", `{}`, interviews.ErrMissingFields, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &mockSystem{
				createFn: func(_ context.Context, got uuid.UUID, cmd interviews.CreateCommand) (*interviews.Interview, error) {
					if got != appID {
						t.Errorf("application = %s, want %s", got, appID)
					}
					if tt.err != nil {
						return nil, tt.err
					}
					if cmd.Type != interviews.TypeOnsite {
						t.Errorf("type = %q, want Onsite", cmd.Type)
					}
					return &interviews.Interview{ID: uuid.New(), ApplicationID: got, Type: cmd.Type}, nil
				},
			}

			rec := serve(sys, apps, owner, "POST", path, tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestHandlerDeleteSwallowsNotFound(t *testing.T) {
	owner := uuid.New()
	apps := apptest.New()
	appID := apps.Add(owner)

	sys := &mockSystem{
		deleteFn: func(context.Context, uuid.UUID, uuid.UUID) error { return interviews.ErrNotFound },
	}

	rec := serve(sys, apps, owner, "DELETE", "/applications/"+appID.String()+"/interviews/"+uuid.NewString(), "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestUpdateCommandApply(t *testing.T) {
	name := "Dana"
	i := interviews.Interview{Type: interviews.TypePhoneScreen, Interviewer: &name}

	empty := ""
	typ := interviews.TypeFinalRound
	interviews.UpdateCommand{Interviewer: &empty, Type: &typ}.Apply(&i)

	if i.Interviewer == nil || *i.Interviewer != "Dana" {
		t.Errorf("Interviewer = %v, want unchanged", i.Interviewer)
	}
	if i.Type != interviews.TypeFinalRound {
		t.Errorf("Type = %s, want FinalRound", i.Type)
	}
}

func TestInterviewLifecycle(t *testing.T) {
	sys := interviews.New(dbtest.Open(t), discard(), testPagination())
	ctx := context.Background()
	appID := uuid.New()

	base := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	var first *interviews.Interview
	for n := range 3 {
		i, err := sys.Create(ctx, appID, interviews.CreateCommand{
			Date: base.Add(time.Duration(n) * 24 * time.Hour),
			Type: interviews.TypeVirtual,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if first == nil {
			first = i
		}
	}

	page, err := sys.List(ctx, appID, pagination.PageRequest{PageSize: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page.Count != 2 || page.ContinuationToken == nil {
		t.Fatalf("first page = %d items, token %v", page.Count, page.ContinuationToken)
	}
	if !page.Items[0].Date.After(page.Items[1].Date) {
		t.Errorf("items not latest first")
	}

	page, err = sys.List(ctx, appID, pagination.PageRequest{PageSize: 2, ContinuationToken: page.ContinuationToken})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page.Count != 1 || page.ContinuationToken != nil || page.Items[0].ID != first.ID {
		t.Errorf("second page = %+v", page)
	}

	notes := "went well"
	updated, err := sys.Update(ctx, first.ID, appID, interviews.UpdateCommand{Notes: &notes})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Notes == nil || *updated.Notes != notes || !updated.Date.Equal(first.Date) {
		t.Errorf("updated = %+v", updated)
	}

	if _, err := sys.Find(ctx, first.ID, uuid.New()); !errors.Is(err, interviews.ErrNotFound) {
		t.Errorf("Find(other partition) error = %v, want ErrNotFound", err)
	}

	if err := sys.Delete(ctx, first.ID, appID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if n, err := sys.Count(ctx, appID); err != nil || n != 2 {
		t.Errorf("Count() = %d, %v; want 2", n, err)
	}
}

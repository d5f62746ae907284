package applications_test

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/query"
)

func TestFiltersFromQuery(t *testing.T) {
	values := url.Values{
		"status":       {"applied, OFFER"},
		"company":      {"acm"},
		"source":       {"linkedin"},
		"applied_from": {"2024-01-01"},
		"applied_to":   {"2024-01-31T23:59:59Z"},
		"q":            {"eng"},
	}

	f, err := applications.FiltersFromQuery(values)
	if err != nil {
		t.Fatalf("FiltersFromQuery() error = %v", err)
	}

	if len(f.Statuses) != 2 || f.Statuses[0] != applications.StatusApplied || f.Statuses[1] != applications.StatusOffer {
		t.Errorf("Statuses = %v", f.Statuses)
	}
	if f.Company == nil || *f.Company != "acm" {
		t.Errorf("Company = %v", f.Company)
	}
	if f.Source == nil || *f.Source != applications.SourceLinkedIn {
		t.Errorf("Source = %v", f.Source)
	}
	if want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); f.AppliedFrom == nil || !f.AppliedFrom.Equal(want) {
		t.Errorf("AppliedFrom = %v, want %v", f.AppliedFrom, want)
	}
	if want := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC); f.AppliedTo == nil || !f.AppliedTo.Equal(want) {
		t.Errorf("AppliedTo = %v, want %v", f.AppliedTo, want)
	}
	if f.Search == nil || *f.Search != "eng" {
		t.Errorf("Search = %v", f.Search)
	}
}

func TestFiltersFromQueryInvalid(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		want   error
	}{
		{"status", url.Values{"status": {"Applied,Hired"}}, applications.ErrInvalidStatus},
		{"source", url.Values{"source": {"Newspaper"}}, applications.ErrInvalidSource},
		{"applied_from", url.Values{"applied_from": {"01/02/2024"}}, applications.ErrInvalidDate},
		{"applied_to", url.Values{"applied_to": {"soon"}}, applications.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := applications.FiltersFromQuery(tt.values); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFiltersApply(t *testing.T) {
	projection := query.NewProjectionMap("public", "applications", "a").
		Project("status", "Status").
		Project("company", "Company").
		Project("role_title", "RoleTitle").
		Project("source", "Source").
		Project("applied_date", "AppliedDate")

	company := "acm"
	source := applications.SourceReferral
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	search := "eng"

	f := applications.Filters{
		Statuses:    []applications.Status{applications.StatusApplied, applications.StatusOffer},
		Company:     &company,
		Source:      &source,
		AppliedFrom: &from,
		Search:      &search,
	}

	sql, args := f.Apply(query.NewBuilder(projection)).BuildCount()

	want := " WHERE a.status IN ($1, $2) AND a.company ILIKE $3 AND a.source = $4" +
		" AND a.applied_date >= $5 AND (a.company ILIKE $6 OR a.role_title ILIKE $7)"
	if !strings.HasSuffix(sql, want) {
		t.Errorf("sql = %q, want suffix %q", sql, want)
	}
	if len(args) != 7 {
		t.Fatalf("args = %v, want 7", args)
	}
	if args[0] != "Applied" || args[3] != "Referral" || args[4] != from {
		t.Errorf("args = %v", args)
	}
}

func TestFiltersApplyEmpty(t *testing.T) {
	projection := query.NewProjectionMap("public", "applications", "a").Project("status", "Status")

	sql, args := applications.Filters{}.Apply(query.NewBuilder(projection)).Build()

	if strings.Contains(sql, "WHERE") || len(args) != 0 {
		t.Errorf("sql = %q args = %v, want no predicates", sql, args)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want applications.Status
		ok   bool
	}{
		{"Applied", applications.StatusApplied, true},
		{"interviewing", applications.StatusInterviewing, true},
		{" GHOSTED ", applications.StatusGhosted, true},
		{"Hired", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := applications.ParseStatus(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("ParseStatus(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCreateCommandEnumDecoding(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus applications.Status
		wantSource applications.Source
		wantErr    error
	}{
		{"canonical", `{"status":"Offer","source":"LinkedIn"}`, applications.StatusOffer, applications.SourceLinkedIn, nil},
		{"case-insensitive", `{"status":"offer","source":"linkedin"}`, applications.StatusOffer, applications.SourceLinkedIn, nil},
		{"omitted", `{}`, "", "", nil},
		{"null", `{"status":null,"source":null}`, "", "", nil},
		{"blank", `{"status":"","source":"  "}`, "", "", nil},
		{"unknown status", `{"status":"Hired"}`, "", "", applications.ErrInvalidStatus},
		{"unknown source", `{"source":"Newspaper"}`, "", "", applications.ErrInvalidSource},
		{"wrong type", `{"status":3}`, "", "", applications.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cmd applications.CreateCommand
			err := json.Unmarshal([]byte(tt.body), &cmd)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if cmd.Status != tt.wantStatus || cmd.Source != tt.wantSource {
				t.Errorf("status, source = %q, %q; want %q, %q", cmd.Status, cmd.Source, tt.wantStatus, tt.wantSource)
			}
		})
	}
}

func TestUpdateCommandApply(t *testing.T) {
	loc := "Remote"
	a := applications.Application{Company: "Acme", RoleTitle: "Engineer", Location: &loc}

	empty := ""
	notes := "follow up"
	applications.UpdateCommand{Company: &empty, Notes: &notes}.Apply(&a)

	if a.Company != "Acme" {
		t.Errorf("Company = %q, want unchanged", a.Company)
	}
	if a.Notes == nil || *a.Notes != notes {
		t.Errorf("Notes = %v, want %q", a.Notes, notes)
	}
	if a.Location == nil || *a.Location != "Remote" {
		t.Errorf("Location = %v, want unchanged", a.Location)
	}
}

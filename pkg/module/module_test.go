package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/jobtracker/pkg/module"
	"github.com/JaimeStill/jobtracker/pkg/routes"
)

func TestNewPrefixValidation(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		wantErr bool
	}{
		{"api", "/api", false},
		{"docs", "/docs", false},
		{"empty", "", true},
		{"root", "/", true},
		{"no leading slash", "api", true},
		{"nested path", "/api/v1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := module.New(tt.prefix)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.prefix, err, tt.wantErr)
			}
			if err == nil && m.Prefix() != tt.prefix {
				t.Errorf("prefix: got %s, want %s", m.Prefix(), tt.prefix)
			}
		})
	}
}

func TestServeStripsPrefix(t *testing.T) {
	var got string
	group := routes.Group{
		Prefix: "/applications",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}", Handler: func(w http.ResponseWriter, r *http.Request) {
				got = r.URL.Path + "|" + r.PathValue("id")
				w.WriteHeader(http.StatusOK)
			}},
		},
	}

	m, err := module.New("/api", group)
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/applications/42", nil)
	m.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if got != "/applications/42|42" {
		t.Errorf("inner request: got %q", got)
	}
	if req.URL.Path != "/api/applications/42" {
		t.Errorf("original request mutated: %s", req.URL.Path)
	}
}

func TestModuleMiddlewareOrder(t *testing.T) {
	var order []string
	m, _ := module.New("/api")
	m.Handle("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	for _, name := range []string{"outer", "inner"} {
		m.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		})
	}

	m.Serve(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/ping", nil))

	if len(order) != 3 || order[0] != "outer" || order[1] != "inner" || order[2] != "handler" {
		t.Errorf("order: got %v", order)
	}
}

func TestRouterDispatch(t *testing.T) {
	m, _ := module.New("/api")
	m.Handle("GET /applications", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	router := module.NewRouter()
	router.Mount(m)
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"module route", "/api/applications", http.StatusAccepted},
		{"trailing slash trimmed", "/api/applications/", http.StatusAccepted},
		{"native route", "/healthz", http.StatusOK},
		{"unknown module route", "/api/missing", http.StatusNotFound},
		{"unmatched prefix", "/apix/applications", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
			if rec.Code != tt.status {
				t.Errorf("GET %s: got %d, want %d", tt.path, rec.Code, tt.status)
			}
		})
	}
}

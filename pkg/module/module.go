// Package module mounts self-contained HTTP surfaces under single-level path
// prefixes, each with its own middleware chain.
package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/JaimeStill/jobtracker/pkg/middleware"
	"github.com/JaimeStill/jobtracker/pkg/routes"
)

// Module serves route groups below a prefix. Requests reach the groups with
// the prefix removed, so groups register paths like "/applications".
type Module struct {
	prefix     string
	mux        *http.ServeMux
	middleware middleware.System
}

// New creates a Module for a single-level prefix such as "/api" and registers
// groups on it. It returns an error for an empty, relative or nested prefix.
func New(prefix string, groups ...routes.Group) (*Module, error) {
	if err := validatePrefix(prefix); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	routes.Register(mux, groups...)

	return &Module{
		prefix:     prefix,
		mux:        mux,
		middleware: middleware.New(),
	}, nil
}

// Handle registers an additional handler on the module's mux.
func (m *Module) Handle(pattern string, handler http.HandlerFunc) {
	m.mux.HandleFunc(pattern, handler)
}

// Prefix returns the module's mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends mw to the module's middleware chain.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the module's mux wrapped in its middleware chain.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.mux)
}

// Serve strips the prefix from the request path and dispatches it.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	m.Handler().ServeHTTP(w, stripPrefix(req, m.prefix))
}

func stripPrefix(req *http.Request, prefix string) *http.Request {
	path := strings.TrimPrefix(req.URL.Path, prefix)
	if path == "" {
		path = "/"
	}

	r := req.Clone(req.Context())
	r.URL = new(url.URL)
	*r.URL = *req.URL
	r.URL.Path = path
	r.URL.RawPath = ""
	return r
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("module prefix cannot be empty")
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	case strings.Count(prefix, "/") != 1 || len(prefix) == 1:
		return fmt.Errorf("module prefix must be a single path segment: %s", prefix)
	}
	return nil
}

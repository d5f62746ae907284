// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"fmt"

	"github.com/JaimeStill/jobtracker/internal/config"
	"github.com/JaimeStill/jobtracker/internal/infrastructure"
	"github.com/JaimeStill/jobtracker/pkg/middleware"
	"github.com/JaimeStill/jobtracker/pkg/module"
	"github.com/JaimeStill/jobtracker/pkg/openapi"
)

// NewModule creates the API module with all domain handlers and middleware.
// The generated OpenAPI document is served below the base path at the
// configured document path.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)
	groups := routeGroups(domain, runtime)

	m, err := module.New(cfg.API.BasePath, groups...)
	if err != nil {
		return nil, err
	}

	spec, err := openapi.MarshalJSON(NewSpec(cfg, groups))
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}
	m.Handle(cfg.API.OpenAPI.Pattern(), openapi.ServeSpec(spec))

	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}

// Document builds the OpenAPI document without serving it.
func Document(cfg *config.Config, infra *infrastructure.Infrastructure) *openapi.Spec {
	runtime := NewRuntime(cfg, infra)
	return NewSpec(cfg, routeGroups(NewDomain(runtime), runtime))
}

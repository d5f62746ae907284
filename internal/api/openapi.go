package api

import (
	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/internal/attachments"
	"github.com/JaimeStill/jobtracker/internal/config"
	"github.com/JaimeStill/jobtracker/internal/history"
	"github.com/JaimeStill/jobtracker/internal/interviews"
	"github.com/JaimeStill/jobtracker/internal/overview"
	"github.com/JaimeStill/jobtracker/internal/users"
	"github.com/JaimeStill/jobtracker/pkg/openapi"
	"github.com/JaimeStill/jobtracker/pkg/routes"
)

// NewSpec describes every documented route in groups. Paths are relative to
// the API base path, which is listed as the document's server.
func NewSpec(cfg *config.Config, groups []routes.Group) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	for _, schemas := range []map[string]*openapi.Schema{
		users.Schemas(),
		applications.Schemas(),
		history.Schemas(),
		interviews.Schemas(),
		attachments.Schemas(),
		overview.Schemas(),
	} {
		spec.Components.AddSchemas(schemas)
	}

	routes.Walk(groups, func(path string, route routes.Route) {
		if route.OpenAPI != nil {
			spec.AddOperation(path, route.Method, route.OpenAPI)
		}
	})

	return spec
}

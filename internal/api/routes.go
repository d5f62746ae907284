package api

import (
	"github.com/JaimeStill/jobtracker/pkg/auth"
	"github.com/JaimeStill/jobtracker/pkg/routes"
)

// routeGroups returns the public credential routes followed by the
// protected domain routes, each wrapped to require an authenticated caller.
func routeGroups(domain *Domain, runtime *Runtime) []routes.Group {
	protect := auth.Middleware(runtime.Auth.Extractor, runtime.Logger)
	apps := domain.Applications

	groups := []routes.Group{
		domain.Users.Handler().AuthRoutes(),
	}

	for _, g := range []routes.Group{
		domain.Users.Handler().Routes(),
		apps.Handler().Routes(),
		domain.History.Handler(apps).Routes(),
		domain.Interviews.Handler(apps).Routes(),
		domain.Attachments.Handler(apps).Routes(),
		domain.Overview.Handler().Routes(),
	} {
		groups = append(groups, g.Wrap(protect))
	}

	return groups
}

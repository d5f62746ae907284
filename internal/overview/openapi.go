package overview

import "github.com/JaimeStill/jobtracker/pkg/openapi"

var getSpec = &openapi.Operation{
	Summary: "Get application overview",
	Tags:    []string{"Applications"},
	Parameters: []*openapi.Parameter{
		openapi.PathParam("id", "Application ID"),
	},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Application with child counts", "Overview"),
		401: openapi.ResponseRef("Unauthorized"),
		404: openapi.ResponseRef("NotFound"),
	},
}

// Schemas returns the component schemas referenced by the overview operation.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Overview": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"application":    openapi.SchemaRef("Application"),
				"interviews":     {Type: "integer"},
				"attachments":    {Type: "integer"},
				"status_changes": {Type: "integer"},
			},
		},
	}
}

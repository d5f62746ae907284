package history

import (
	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/openapi"
)

var listSpec = &openapi.Operation{
	Summary:     "List status history",
	Description: "Status transitions of an application, most recent first.",
	Tags:        []string{"Status History"},
	Parameters: append(
		[]*openapi.Parameter{openapi.PathParam("id", "Application ID")},
		openapi.PageParams()...,
	),
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseSchema("Page of status changes", openapi.PageOf("StatusHistoryEntry")),
		400: openapi.ResponseRef("BadRequest"),
		401: openapi.ResponseRef("Unauthorized"),
		404: openapi.ResponseRef("NotFound"),
	},
}

// Schemas returns the component schemas referenced by history operations.
func Schemas() map[string]*openapi.Schema {
	status := &openapi.Schema{Type: "string", Enum: openapi.Enum(applications.Statuses())}

	return map[string]*openapi.Schema{
		"StatusHistoryEntry": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":             {Type: "string", Format: "uuid"},
				"application_id": {Type: "string", Format: "uuid"},
				"old_status":     status,
				"new_status":     status,
				"changed_at":     {Type: "string", Format: "date-time"},
			},
		},
	}
}

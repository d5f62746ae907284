package applications

import "github.com/JaimeStill/jobtracker/pkg/openapi"

type openAPISpec struct {
	List         *openapi.Operation
	Create       *openapi.Operation
	Count        *openapi.Operation
	Find         *openapi.Operation
	Update       *openapi.Operation
	Delete       *openapi.Operation
	UpdateStatus *openapi.Operation
}

var idParam = openapi.PathParam("id", "Application ID")

var spec = openAPISpec{
	List: &openapi.Operation{
		Summary:     "List applications",
		Description: "Pages through the caller's applications, newest applied_date first.",
		Tags:        []string{"Applications"},
		Parameters: append(openapi.PageParams(),
			openapi.QueryParam("status", "string", "Comma-separated statuses", false),
			openapi.QueryParam("company", "string", "Case-insensitive company substring", false),
			openapi.QueryParam("source", "string", "Source", false),
			openapi.QueryParam("applied_from", "string", "Inclusive lower applied_date bound", false),
			openapi.QueryParam("applied_to", "string", "Inclusive upper applied_date bound", false),
			openapi.QueryParam("q", "string", "Search company and role title", false),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseSchema("Page of applications", openapi.PageOf("Application")),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			503: openapi.ResponseRef("ServiceUnavailable"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create application",
		Tags:        []string{"Applications"},
		RequestBody: openapi.RequestBodyJSON("CreateApplication", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Application created", "Application"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
		},
	},
	Count: &openapi.Operation{
		Summary: "Count applications",
		Tags:    []string{"Applications"},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Application count", "Count"),
			401: openapi.ResponseRef("Unauthorized"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get application",
		Tags:       []string{"Applications"},
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Application", "Application"),
			401: openapi.ResponseRef("Unauthorized"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update application",
		Description: "Merge patch; absent fields are unchanged and empty company or role_title are ignored.",
		Tags:        []string{"Applications"},
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("UpdateApplication", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated application", "Application"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete application",
		Tags:       []string{"Applications"},
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			204: {Description: "Application deleted"},
			401: openapi.ResponseRef("Unauthorized"),
		},
	},
	UpdateStatus: &openapi.Operation{
		Summary:     "Change application status",
		Description: "Records the transition in the status history.",
		Tags:        []string{"Applications"},
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("StatusChange", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated application", "Application"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas referenced by application operations.
func Schemas() map[string]*openapi.Schema {
	status := &openapi.Schema{Type: "string", Enum: openapi.Enum(statuses)}
	source := &openapi.Schema{Type: "string", Enum: openapi.Enum(sources)}
	optional := func(desc string) *openapi.Schema {
		return &openapi.Schema{Type: "string", Nullable: true, Description: desc}
	}

	return map[string]*openapi.Schema{
		"Application": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"user_id":      {Type: "string", Format: "uuid"},
				"company":      {Type: "string"},
				"role_title":   {Type: "string"},
				"location":     optional(""),
				"salary_range": optional(""),
				"applied_date": {Type: "string", Format: "date-time"},
				"status":       status,
				"source":       source,
				"url":          optional("Posting URL"),
				"resume_used":  optional("Resume version sent"),
				"notes":        optional(""),
				"created_at":   {Type: "string", Format: "date-time"},
				"updated_at":   {Type: "string", Format: "date-time"},
			},
		},
		"CreateApplication": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"company":      {Type: "string"},
				"role_title":   {Type: "string"},
				"location":     optional(""),
				"salary_range": optional(""),
				"applied_date": {Type: "string", Format: "date-time", Description: "Defaults to now"},
				"status":       status,
				"source":       source,
				"url":          optional(""),
				"resume_used":  optional(""),
				"notes":        optional(""),
			},
			Required: []string{"company", "role_title"},
		},
		"UpdateApplication": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"company":      {Type: "string"},
				"role_title":   {Type: "string"},
				"location":     optional(""),
				"salary_range": optional(""),
				"url":          optional(""),
				"resume_used":  optional(""),
				"notes":        optional(""),
			},
		},
		"StatusChange": {
			Type:       "object",
			Properties: map[string]*openapi.Schema{"new_status": status},
			Required:   []string{"new_status"},
		},
		"Count": {
			Type:       "object",
			Properties: map[string]*openapi.Schema{"count": {Type: "integer"}},
		},
	}
}

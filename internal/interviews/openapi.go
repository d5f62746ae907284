package interviews

import "github.com/JaimeStill/jobtracker/pkg/openapi"

type openAPISpec struct {
	List   *openapi.Operation
	Create *openapi.Operation
	Find   *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var (
	appParam       = openapi.PathParam("id", "Application ID")
	interviewParam = openapi.PathParam("interviewId", "Interview ID")
	notFound       = openapi.ResponseRef("NotFound")
	unauthorized   = openapi.ResponseRef("Unauthorized")
)

var spec = openAPISpec{
	List: &openapi.Operation{
		Summary:    "List interviews",
		Tags:       []string{"Interviews"},
		Parameters: append([]*openapi.Parameter{appParam}, openapi.PageParams()...),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseSchema("Page of interviews", openapi.PageOf("Interview")),
			400: openapi.ResponseRef("BadRequest"),
			401: unauthorized,
			404: notFound,
		},
	},
	Create: &openapi.Operation{
		Summary:     "Schedule interview",
		Tags:        []string{"Interviews"},
		Parameters:  []*openapi.Parameter{appParam},
		RequestBody: openapi.RequestBodyJSON("CreateInterview", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Interview created", "Interview"),
			400: openapi.ResponseRef("BadRequest"),
			401: unauthorized,
			404: notFound,
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get interview",
		Tags:       []string{"Interviews"},
		Parameters: []*openapi.Parameter{appParam, interviewParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Interview", "Interview"),
			401: unauthorized,
			404: notFound,
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update interview",
		Tags:        []string{"Interviews"},
		Parameters:  []*openapi.Parameter{appParam, interviewParam},
		RequestBody: openapi.RequestBodyJSON("UpdateInterview", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated interview", "Interview"),
			400: openapi.ResponseRef("BadRequest"),
			401: unauthorized,
			404: notFound,
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete interview",
		Tags:       []string{"Interviews"},
		Parameters: []*openapi.Parameter{appParam, interviewParam},
		Responses: map[int]*openapi.Response{
			204: {Description: "Interview deleted"},
			401: unauthorized,
			404: notFound,
		},
	},
}

// Schemas returns the component schemas referenced by interview operations.
func Schemas() map[string]*openapi.Schema {
	typ := &openapi.Schema{Type: "string", Enum: openapi.Enum(types)}
	nullable := &openapi.Schema{Type: "string", Nullable: true}

	return map[string]*openapi.Schema{
		"Interview": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":             {Type: "string", Format: "uuid"},
				"application_id": {Type: "string", Format: "uuid"},
				"date":           {Type: "string", Format: "date-time"},
				"interviewer":    nullable,
				"type":           typ,
				"notes":          nullable,
				"created_at":     {Type: "string", Format: "date-time"},
				"updated_at":     {Type: "string", Format: "date-time"},
			},
		},
		"CreateInterview": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"date":        {Type: "string", Format: "date-time"},
				"interviewer": nullable,
				"type":        typ,
				"notes":       nullable,
			},
			Required: []string{"date", "type"},
		},
		"UpdateInterview": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"date":        {Type: "string", Format: "date-time"},
				"interviewer": {Type: "string", Description: "Ignored when empty"},
				"type":        typ,
				"notes":       nullable,
			},
		},
	}
}

package users

import "github.com/JaimeStill/jobtracker/pkg/openapi"

var (
	registerSpec = &openapi.Operation{
		Summary:     "Register account",
		Tags:        []string{"Auth"},
		RequestBody: openapi.RequestBodyJSON("Credentials", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Account created", "AuthResponse"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	}

	loginSpec = &openapi.Operation{
		Summary:     "Log in",
		Tags:        []string{"Auth"},
		RequestBody: openapi.RequestBodyJSON("Credentials", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Token issued", "AuthResponse"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
		},
	}

	profileSpec = &openapi.Operation{
		Summary: "Current user",
		Tags:    []string{"Auth"},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Caller's account", "User"),
			401: openapi.ResponseRef("Unauthorized"),
		},
	}
)

// Schemas returns the component schemas referenced by account operations.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Credentials": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"email":    {Type: "string", Format: "email"},
				"password": {Type: "string", Format: "password"},
			},
			Required: []string{"email", "password"},
		},
		"AuthResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"token":   {Type: "string"},
				"user_id": {Type: "string", Format: "uuid"},
				"email":   {Type: "string"},
			},
		},
		"User": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"email":      {Type: "string"},
				"plan":       {Type: "string", Default: DefaultPlan},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
	}
}

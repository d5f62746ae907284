package attachments

import "github.com/JaimeStill/jobtracker/pkg/openapi"

type openAPISpec struct {
	List            *openapi.Operation
	Confirm         *openapi.Operation
	PresignUpload   *openapi.Operation
	PresignDownload *openapi.Operation
	Delete          *openapi.Operation
}

var (
	appParam        = openapi.PathParam("id", "Application ID")
	attachmentParam = openapi.PathParam("attachmentId", "Attachment ID")
)

var spec = openAPISpec{
	List: &openapi.Operation{
		Summary:    "List attachments",
		Tags:       []string{"Attachments"},
		Parameters: append([]*openapi.Parameter{appParam}, openapi.PageParams()...),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseSchema("Page of attachments", openapi.PageOf("Attachment")),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Confirm: &openapi.Operation{
		Summary:     "Confirm upload",
		Description: "Records an attachment once its object exists in storage.",
		Tags:        []string{"Attachments"},
		Parameters:  []*openapi.Parameter{appParam},
		RequestBody: openapi.RequestBodyJSON("ConfirmUpload", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Attachment recorded", "Attachment"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	PresignUpload: &openapi.Operation{
		Summary:     "Request upload URL",
		Tags:        []string{"Attachments"},
		Parameters:  []*openapi.Parameter{appParam},
		RequestBody: openapi.RequestBodyJSON("UploadRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Signed upload URL", "UploadTicket"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	PresignDownload: &openapi.Operation{
		Summary:    "Request download URL",
		Tags:       []string{"Attachments"},
		Parameters: []*openapi.Parameter{appParam, attachmentParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Signed download URL", "DownloadTicket"),
			401: openapi.ResponseRef("Unauthorized"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete attachment",
		Description: "Removes the stored object and the attachment record.",
		Tags:        []string{"Attachments"},
		Parameters:  []*openapi.Parameter{appParam, attachmentParam},
		Responses: map[int]*openapi.Response{
			204: {Description: "Attachment deleted"},
			401: openapi.ResponseRef("Unauthorized"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas referenced by attachment operations.
func Schemas() map[string]*openapi.Schema {
	uuidSchema := &openapi.Schema{Type: "string", Format: "uuid"}
	timestamp := &openapi.Schema{Type: "string", Format: "date-time"}
	typ := &openapi.Schema{Type: "string", Default: DefaultType}

	return map[string]*openapi.Schema{
		"Attachment": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":             uuidSchema,
				"application_id": uuidSchema,
				"type":           {Type: "string"},
				"file_name":      {Type: "string"},
				"content_type":   {Type: "string"},
				"size_bytes":     {Type: "integer", Format: "int64"},
				"storage_path":   {Type: "string"},
				"uploaded_at":    timestamp,
			},
		},
		"UploadRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"file_name":    {Type: "string"},
				"content_type": {Type: "string"},
				"size_bytes":   {Type: "integer", Format: "int64"},
				"type":         typ,
			},
			Required: []string{"file_name", "content_type", "size_bytes"},
		},
		"UploadTicket": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"upload_url":    {Type: "string"},
				"storage_path":  {Type: "string"},
				"headers":       {Type: "object", Description: "Headers the upload request must carry"},
				"attachment_id": uuidSchema,
				"expires_at":    timestamp,
			},
		},
		"ConfirmUpload": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"attachment_id": uuidSchema,
				"file_name":     {Type: "string"},
				"type":          typ,
			},
			Required: []string{"attachment_id", "file_name"},
		},
		"DownloadTicket": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"download_url": {Type: "string"},
				"file_name":    {Type: "string"},
				"expires_at":   timestamp,
			},
		},
	}
}

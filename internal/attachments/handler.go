package attachments

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/auth"
	"github.com/JaimeStill/jobtracker/pkg/handlers"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/routes"
)

// Handler provides HTTP endpoints for the attachments of an application.
type Handler struct {
	sys        System
	apps       applications.System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler. apps verifies the caller owns the parent
// application on every request.
func NewHandler(
	sys System,
	apps applications.System,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		apps:       apps,
		logger:     logger.With("handler", "attachments"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for attachment endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/applications/{id}/attachments",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: spec.List},
			{Method: "POST", Pattern: "", Handler: h.Confirm, OpenAPI: spec.Confirm},
			{Method: "POST", Pattern: "/presign-upload", Handler: h.PresignUpload, OpenAPI: spec.PresignUpload},
			{Method: "GET", Pattern: "/{attachmentId}/presign-download", Handler: h.PresignDownload, OpenAPI: spec.PresignDownload},
			{Method: "DELETE", Pattern: "/{attachmentId}", Handler: h.Delete, OpenAPI: spec.Delete},
		},
	}
}

// PresignUpload returns a signed URL the client uploads the file to.
func (h *Handler) PresignUpload(w http.ResponseWriter, r *http.Request) {
	p, appID, ok := h.parent(w, r)
	if !ok {
		return
	}

	var req UploadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	ticket, err := h.sys.PresignUpload(r.Context(), p.UserID, appID, req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ticket)
}

// Confirm records a completed upload.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	p, appID, ok := h.parent(w, r)
	if !ok {
		return
	}

	var cmd ConfirmCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	a, err := h.sys.Confirm(r.Context(), p.UserID, appID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, a)
}

// List returns one page of the application's attachments, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	_, appID, ok := h.parent(w, r)
	if !ok {
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination, h.pagination.ChildPageSize)

	result, err := h.sys.List(r.Context(), appID, page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// PresignDownload returns a signed URL that downloads the attachment.
func (h *Handler) PresignDownload(w http.ResponseWriter, r *http.Request) {
	appID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	ticket, err := h.sys.PresignDownload(r.Context(), id, appID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ticket)
}

// Delete removes an attachment and its stored object. Deleting an absent
// attachment succeeds.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	appID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	if err := h.sys.Delete(r.Context(), id, appID); err != nil && !errors.Is(err, ErrNotFound) {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parent(w http.ResponseWriter, r *http.Request) (auth.Principal, uuid.UUID, bool) {
	p, err := auth.RequestPrincipal(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return p, uuid.Nil, false
	}

	appID, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return p, uuid.Nil, false
	}

	if _, err := h.apps.Find(r.Context(), appID, p.UserID); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return p, uuid.Nil, false
	}

	return p, appID, true
}

func (h *Handler) target(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	_, appID, ok := h.parent(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	id, err := handlers.PathUUID(r, "attachmentId")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return uuid.Nil, uuid.Nil, false
	}
	return appID, id, true
}

package interviews

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

// Handler provides HTTP endpoints for the interviews of an application.
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
		logger:     logger.With("handler", "interviews"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for interview endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/applications/{id}/interviews",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: spec.List},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: spec.Create},
			{Method: "GET", Pattern: "/{interviewId}", Handler: h.Find, OpenAPI: spec.Find},
			{Method: "PATCH", Pattern: "/{interviewId}", Handler: h.Update, OpenAPI: spec.Update},
			{Method: "DELETE", Pattern: "/{interviewId}", Handler: h.Delete, OpenAPI: spec.Delete},
		},
	}
}

// List returns one page of the application's interviews, latest date first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	appID, ok := h.parent(w, r)
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

// Create schedules an interview against the application.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	appID, ok := h.parent(w, r)
	if !ok {
		return
	}

	var cmd CreateCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	i, err := h.sys.Create(r.Context(), appID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, i)
}

// Find returns one interview.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	appID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	i, err := h.sys.Find(r.Context(), id, appID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, i)
}

// Update merges a JSON patch into an interview.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	appID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	var cmd UpdateCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	i, err := h.sys.Update(r.Context(), id, appID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, i)
}

// Delete removes an interview. Deleting an absent interview succeeds.
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

// parent resolves the application path value and verifies the caller owns it.
func (h *Handler) parent(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	p, err := auth.RequestPrincipal(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return uuid.Nil, false
	}

	appID, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return uuid.Nil, false
	}

	if _, err := h.apps.Find(r.Context(), appID, p.UserID); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return uuid.Nil, false
	}

	return appID, true
}

func (h *Handler) target(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	appID, ok := h.parent(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	id, err := handlers.PathUUID(r, "interviewId")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return uuid.Nil, uuid.Nil, false
	}
	return appID, id, true
}

package applications

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/jobtracker/pkg/auth"
	"github.com/JaimeStill/jobtracker/pkg/handlers"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/routes"
)

// Handler provides HTTP endpoints for application operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "applications"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for application endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/applications",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: spec.List},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: spec.Create},
			{Method: "GET", Pattern: "/count", Handler: h.Count, OpenAPI: spec.Count},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: spec.Find},
			{Method: "PATCH", Pattern: "/{id}", Handler: h.Update, OpenAPI: spec.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: spec.Delete},
			{Method: "POST", Pattern: "/{id}/status", Handler: h.UpdateStatus, OpenAPI: spec.UpdateStatus},
		},
	}
}

// List returns one page of the caller's applications, filtered by query parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	filters, err := FiltersFromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination, h.pagination.DefaultPageSize)

	result, err := h.sys.List(r.Context(), p.UserID, page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Count returns the number of applications the caller owns.
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	n, err := h.sys.Count(r.Context(), p.UserID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Count{Count: n})
}

// Find returns a single application by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	p, id, ok := h.target(w, r)
	if !ok {
		return
	}

	a, err := h.sys.Find(r.Context(), id, p.UserID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, a)
}

// Create processes a JSON body to create a new application.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var cmd CreateCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	a, err := h.sys.Create(r.Context(), p.UserID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, a)
}

// Update merges a JSON patch into an existing application.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	p, id, ok := h.target(w, r)
	if !ok {
		return
	}

	var cmd UpdateCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	a, err := h.sys.Update(r.Context(), id, p.UserID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, a)
}

// UpdateStatus moves an application to the status named in the body.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	p, id, ok := h.target(w, r)
	if !ok {
		return
	}

	var cmd StatusCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	a, err := h.sys.UpdateStatus(r.Context(), id, p.UserID, cmd.NewStatus)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, a)
}

// Delete removes an application. Deleting an absent application succeeds.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	p, id, ok := h.target(w, r)
	if !ok {
		return
	}

	if err := h.sys.Delete(r.Context(), id, p.UserID); err != nil && !errors.Is(err, ErrNotFound) {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) principal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, err := auth.RequestPrincipal(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return auth.Principal{}, false
	}
	return p, true
}

func (h *Handler) target(w http.ResponseWriter, r *http.Request) (auth.Principal, uuid.UUID, bool) {
	p, ok := h.principal(w, r)
	if !ok {
		return p, uuid.Nil, false
	}

	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return p, uuid.Nil, false
	}
	return p, id, true
}

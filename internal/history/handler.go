package history

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/auth"
	"github.com/JaimeStill/jobtracker/pkg/handlers"
	"github.com/JaimeStill/jobtracker/pkg/pagination"
	"github.com/JaimeStill/jobtracker/pkg/routes"
)

// Handler provides the status history endpoint of an application.
type Handler struct {
	sys        System
	apps       applications.System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler. apps verifies the caller owns the parent
// application before history is read.
func NewHandler(
	sys System,
	apps applications.System,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		apps:       apps,
		logger:     logger.With("handler", "history"),
		pagination: pagination,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/applications/{id}/status-history",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: listSpec},
		},
	}
}

// List returns one page of the application's transitions, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p, err := auth.RequestPrincipal(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if _, err := h.apps.Find(r.Context(), id, p.UserID); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination, h.pagination.ChildPageSize)

	result, err := h.sys.List(r.Context(), id, page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package overview

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/jobtracker/internal/applications"
	"github.com/JaimeStill/jobtracker/pkg/auth"
	"github.com/JaimeStill/jobtracker/pkg/handlers"
	"github.com/JaimeStill/jobtracker/pkg/routes"
)

// Handler serves application overviews.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates an overview handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "overview"),
	}
}

// Routes returns the overview route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/applications/{id}/overview",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Get, OpenAPI: getSpec},
		},
	}
}

// Get returns the caller's application with its child counts.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
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

	o, err := h.sys.Get(r.Context(), id, p.UserID)
	if err != nil {
		handlers.RespondError(w, h.logger, applications.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, o)
}

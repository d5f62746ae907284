package users

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/jobtracker/pkg/auth"
	"github.com/JaimeStill/jobtracker/pkg/handlers"
	"github.com/JaimeStill/jobtracker/pkg/routes"
)

// Handler provides HTTP endpoints for accounts.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "users"),
	}
}

// AuthRoutes returns the unauthenticated credential exchange endpoints.
func (h *Handler) AuthRoutes() routes.Group {
	return routes.Group{
		Prefix: "/auth",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/register", Handler: h.Register, OpenAPI: registerSpec},
			{Method: "POST", Pattern: "/login", Handler: h.Login, OpenAPI: loginSpec},
		},
	}
}

// Routes returns the endpoints that require an authenticated caller.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/me",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Profile, OpenAPI: profileSpec},
		},
	}
}

// Register creates an account and returns 201 with a token.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var cred Credentials
	if err := handlers.DecodeJSON(r, &cred); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	resp, err := h.sys.Register(r.Context(), cred)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// Login exchanges credentials for a token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var cred Credentials
	if err := handlers.DecodeJSON(r, &cred); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	resp, err := h.sys.Login(r.Context(), cred)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Profile returns the caller's account.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := auth.RequestPrincipal(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	u, err := h.sys.Profile(r.Context(), p)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, u)
}

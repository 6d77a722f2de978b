package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/turnero/turnero/internal/platform/db"
	"github.com/turnero/turnero/internal/platform/session"
)

type Handler struct {
	svc      *Service
	sessions *session.Manager
}

func NewHandler(svc *Service, sessions *session.Manager) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)
	api.GET("/session", h.Session)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	DisplayName   string `json:"display_name,omitempty"`
	Role          string `json:"role,omitempty"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}
	id, err := h.svc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if db.IsDataAccess(err) {
			return echo.NewHTTPError(http.StatusInternalServerError, "data access failure")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if id == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		DisplayName:   id.DisplayName(),
		Role:          id.RoleLabel(),
	})
}

func (h *Handler) Logout(c echo.Context) error {
	h.svc.Logout()
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current session state. It is readable without
// signing in.
func (h *Handler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: h.sessions.IsAuthenticated(),
		DisplayName:   h.sessions.DisplayName(),
		Role:          h.sessions.RoleLabel(),
	})
}

package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Require rejects requests while the session is clear.
func Require(m *Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects requests unless the administrator is signed in.
func RequireAdmin(m *Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "administrator required")
			}
			return next(c)
		}
	}
}

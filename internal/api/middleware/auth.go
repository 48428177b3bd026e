package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

// Context keys set by RequireSession.
const (
	CtxRole   = "role"
	CtxUserID = "user_id"
)

// RequireSession rejects requests while no user is signed in and injects the
// session's primary role and user id into context.
func RequireSession(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := sessions.Current()
			if !s.Authenticated || s.User == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
			}

			primary, _ := s.User.PrimaryRole()
			c.Set(CtxRole, primary)
			c.Set(CtxUserID, s.User.ID)

			return next(c)
		}
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

type SessionHandler struct {
	sessions ports.SessionService
	nav      ports.NavigationService
}

func NewSessionHandler(sessions ports.SessionService, nav ports.NavigationService) *SessionHandler {
	return &SessionHandler{sessions: sessions, nav: nav}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
	PrimaryRole   string       `json:"primary_role,omitempty"`
}

type loginResponse struct {
	User       *domain.User         `json:"user"`
	Navigation ports.NavigationView `json:"navigation"`
}

// Get returns the current session.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	s := h.sessions.Current()
	resp := sessionResponse{Authenticated: s.Authenticated, User: s.User}
	if s.Authenticated {
		resp.PrimaryRole, _ = s.User.PrimaryRole()
	}
	return c.JSON(http.StatusOK, resp)
}

// Login signs the device in.
//
// @Summary      Login
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	ctx := c.Request().Context()
	user, err := h.sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{User: user, Navigation: h.nav.View(ctx)})
}

// Logout signs the device out. It always succeeds.
//
// @Summary      Logout
// @Tags         session
// @Success      204
// @Router       /session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

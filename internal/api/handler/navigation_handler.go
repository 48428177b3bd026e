package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

type NavigationHandler struct {
	nav ports.NavigationService
}

func NewNavigationHandler(nav ports.NavigationService) *NavigationHandler {
	return &NavigationHandler{nav: nav}
}

// Get returns the shell layout for the current session.
//
// @Summary      Navigation view
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  ports.NavigationView
// @Router       /navigation [get]
func (h *NavigationHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.nav.View(c.Request().Context()))
}

// MarkOnboardingSeen records that onboarding was shown on this device.
//
// @Summary      Finish onboarding
// @Tags         navigation
// @Success      204
// @Failure      500  {object}  map[string]string
// @Router       /navigation/onboarding [post]
func (h *NavigationHandler) MarkOnboardingSeen(c echo.Context) error {
	if err := h.nav.MarkOnboardingSeen(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

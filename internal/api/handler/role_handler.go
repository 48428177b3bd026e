package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// List returns every role record.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {object}  listResponse[domain.RoleRecord]
// @Failure      403  {object}  map[string]string
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.RoleRecord{}
	}
	return c.JSON(http.StatusOK, listResponse[domain.RoleRecord]{Data: items})
}

// Delete removes a role. Protected roles are refused with 409.
//
// @Summary      Delete role
// @Tags         roles
// @Param        id   path  int  true  "Role ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

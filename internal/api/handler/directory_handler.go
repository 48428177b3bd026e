package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

type DirectoryHandler struct {
	service ports.DirectoryService
}

func NewDirectoryHandler(service ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

type pagedResponse[T any] struct {
	Data []T             `json:"data"`
	Meta domain.PageMeta `json:"meta"`
}

// Ministries
//
// @Summary      List ministries
// @Tags         directory
// @Produce      json
// @Success      200  {object}  listResponse[domain.Ministry]
// @Router       /ministries [get]
func (h *DirectoryHandler) Ministries(c echo.Context) error {
	items, err := h.service.Ministries(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.Ministry{}
	}
	return c.JSON(http.StatusOK, listResponse[domain.Ministry]{Data: items})
}

// ProgramKerja
//
// @Summary      List work programs
// @Tags         directory
// @Produce      json
// @Param        page         query     int     false  "Page (1-based)"
// @Param        search       query     string  false  "Name search"
// @Param        ministry_id  query     int     false  "Ministry filter"
// @Success      200          {object}  listResponse[domain.ProgramKerja]
// @Router       /program-kerja [get]
func (h *DirectoryHandler) ProgramKerja(c echo.Context) error {
	items, err := h.service.ProgramKerja(c.Request().Context(), pageQuery(c))
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.ProgramKerja{}
	}
	return c.JSON(http.StatusOK, listResponse[domain.ProgramKerja]{Data: items})
}

// Users
//
// @Summary      List users
// @Tags         directory
// @Produce      json
// @Param        page    query     int     false  "Page (1-based)"
// @Param        search  query     string  false  "Name or email search"
// @Success      200     {object}  listResponse[domain.User]
// @Router       /users [get]
func (h *DirectoryHandler) Users(c echo.Context) error {
	items, err := h.service.Users(c.Request().Context(), pageQuery(c))
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.User{}
	}
	return c.JSON(http.StatusOK, listResponse[domain.User]{Data: items})
}

// ActivityLogs
//
// @Summary      Activity log
// @Tags         directory
// @Produce      json
// @Param        page  query     int     false  "Page (1-based)"
// @Param        type  query     string  false  "Activity type"
// @Success      200   {object}  pagedResponse[domain.ActivityLog]
// @Router       /activity-logs [get]
func (h *DirectoryHandler) ActivityLogs(c echo.Context) error {
	items, meta, err := h.service.ActivityLogs(c.Request().Context(), pageQuery(c))
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.ActivityLog{}
	}
	return c.JSON(http.StatusOK, pagedResponse[domain.ActivityLog]{Data: items, Meta: meta})
}

// Stats
//
// @Summary      Dashboard counters
// @Tags         directory
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /dashboard/stats [get]
func (h *DirectoryHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

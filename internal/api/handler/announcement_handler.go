package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

type AnnouncementHandler struct {
	service ports.AnnouncementService
}

func NewAnnouncementHandler(service ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

type createAnnouncementRequest struct {
	Title   string `json:"title"   validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
	Type    string `json:"type"    validate:"omitempty,oneof=info important warning event"`
}

type listResponse[T any] struct {
	Data []T `json:"data"`
}

type countResponse struct {
	Count int `json:"count"`
}

// List returns a page of announcements.
//
// @Summary      List announcements
// @Tags         announcements
// @Produce      json
// @Param        page  query     int  false  "Page (1-based)"
// @Success      200   {object}  listResponse[domain.Announcement]
// @Failure      401   {object}  map[string]string
// @Router       /announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), pageQuery(c).Page)
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.Announcement{}
	}
	return c.JSON(http.StatusOK, listResponse[domain.Announcement]{Data: items})
}

// UnreadCount returns the number of unread announcements.
//
// @Summary      Unread announcements
// @Tags         announcements
// @Produce      json
// @Success      200  {object}  countResponse
// @Router       /announcements/unread-count [get]
func (h *AnnouncementHandler) UnreadCount(c echo.Context) error {
	n, err := h.service.UnreadCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}

// Create publishes an announcement.
//
// @Summary      Create announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        body  body      createAnnouncementRequest  true  "Announcement"
// @Success      201   {object}  domain.Announcement
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req createAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), ports.AnnouncementInput{
		Title:   req.Title,
		Content: req.Content,
		Type:    req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Delete removes an announcement.
//
// @Summary      Delete announcement
// @Tags         announcements
// @Param        id   path  int  true  "Announcement ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

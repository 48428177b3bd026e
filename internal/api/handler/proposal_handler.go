package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

type ProposalHandler struct {
	service ports.ProposalService
}

func NewProposalHandler(service ports.ProposalService) *ProposalHandler {
	return &ProposalHandler{service: service}
}

type updateStatusRequest struct {
	StatusID int64  `json:"status_id"  validate:"required,gt=0"`
	Note     string `json:"keterangan" validate:"max=1000"`
}

// List returns a page of proposals.
//
// @Summary      List proposals
// @Tags         proposals
// @Produce      json
// @Param        page    query     int     false  "Page (1-based)"
// @Param        search  query     string  false  "Title search"
// @Success      200     {object}  listResponse[domain.Proposal]
// @Router       /proposals [get]
func (h *ProposalHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), pageQuery(c))
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.Proposal{}
	}
	return c.JSON(http.StatusOK, listResponse[domain.Proposal]{Data: items})
}

// Statuses lists the selectable review outcomes.
//
// @Summary      Proposal statuses
// @Tags         proposals
// @Produce      json
// @Success      200  {object}  listResponse[domain.ProposalStatus]
// @Router       /proposals/statuses [get]
func (h *ProposalHandler) Statuses(c echo.Context) error {
	items, err := h.service.Statuses(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.ProposalStatus{}
	}
	return c.JSON(http.StatusOK, listResponse[domain.ProposalStatus]{Data: items})
}

// UpdateStatus records a review decision.
//
// @Summary      Review proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Proposal ID"
// @Param        body  body      updateStatusRequest  true  "Decision"
// @Success      200   {object}  domain.Proposal
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /proposals/{id}/status [patch]
func (h *ProposalHandler) UpdateStatus(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	updated, err := h.service.UpdateStatus(c.Request().Context(), id, req.StatusID, req.Note)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

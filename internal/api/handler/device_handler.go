package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

type DeviceHandler struct {
	service ports.DeviceService
}

func NewDeviceHandler(service ports.DeviceService) *DeviceHandler {
	return &DeviceHandler{service: service}
}

type deviceTokenRequest struct {
	Token    string `json:"token"    validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=android ios web"`
}

type deviceTokenResponse struct {
	Queued bool `json:"queued"`
}

// Register queues a push token registration. The response never reflects
// the backend outcome.
//
// @Summary      Register push token
// @Tags         device
// @Accept       json
// @Produce      json
// @Param        body  body      deviceTokenRequest  true  "Push token"
// @Success      202   {object}  deviceTokenResponse
// @Failure      400   {object}  map[string]string
// @Router       /device-token [post]
func (h *DeviceHandler) Register(c echo.Context) error {
	var req deviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	queued := h.service.Register(c.Request().Context(), req.Token, req.Platform)
	return c.JSON(http.StatusAccepted, deviceTokenResponse{Queued: queued})
}

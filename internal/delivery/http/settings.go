package http

import (
	"net/http"

	"trading-journal/internal/dto"
	"trading-journal/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupSettings(base *echo.Group) {
	base.GET("/settings", h.GetSettings)
	base.PUT("/settings", h.SaveSettings)
}

func (h *HttpAPIHandler) GetSettings(c echo.Context) error {
	settings, err := h.service.SettingsService.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", settings))
}

func (h *HttpAPIHandler) SaveSettings(c echo.Context) error {
	var req dto.SaveSettingsRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return badRequest(c, err)
	}
	settings, err := h.service.SettingsService.Save(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Settings saved", settings))
}

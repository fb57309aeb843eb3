package http

import (
	"net/http"

	"trading-journal/internal/dto"
	"trading-journal/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupSetups(base *echo.Group) {
	setups := base.Group("/setups")
	{
		setups.GET("", h.ListSetups)
		setups.GET("/:id", h.GetSetup)
		setups.POST("", h.CreateSetup)
		setups.PUT("/:id", h.UpdateSetup)
		setups.DELETE("/:id", h.DeleteSetup)
	}
}

func (h *HttpAPIHandler) ListSetups(c echo.Context) error {
	setups, err := h.service.SetupService.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", setups))
}

func (h *HttpAPIHandler) GetSetup(c echo.Context) error {
	setup, err := h.service.SetupService.Get(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", setup))
}

func (h *HttpAPIHandler) CreateSetup(c echo.Context) error {
	var req dto.SaveSetupRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return badRequest(c, err)
	}
	req.ID = ""
	setup, err := h.service.SetupService.Save(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "Setup saved", setup))
}

func (h *HttpAPIHandler) UpdateSetup(c echo.Context) error {
	var req dto.SaveSetupRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return badRequest(c, err)
	}
	req.ID = c.Param("id")
	setup, err := h.service.SetupService.Save(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Setup saved", setup))
}

func (h *HttpAPIHandler) DeleteSetup(c echo.Context) error {
	if err := h.service.SetupService.Delete(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Setup deleted", nil))
}

package http

import (
	"fmt"
	"net/http"

	"trading-journal/internal/dto"
	"trading-journal/internal/service"
	"trading-journal/pkg/common"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupMarket(base *echo.Group) {
	base.GET("/economic-calendar", h.EconomicCalendar)
	base.POST("/economic-calendar/refresh", h.RefreshEconomicCalendar)
	base.GET("/currency-strength", h.CurrencyStrength)
	base.GET("/symbols", h.Symbols)
}

// Symbols lists the tradable symbol catalog, optionally narrowed to one market category.
func (h *HttpAPIHandler) Symbols(c echo.Context) error {
	var q dto.SymbolQuery
	if err := h.bindAndValidate(c, &q); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", common.GetMarketSymbols(q.Category)))
}

func (h *HttpAPIHandler) EconomicCalendar(c echo.Context) error {
	var filter dto.EconomicEventFilter
	if err := h.bindAndValidate(c, &filter); err != nil {
		return badRequest(c, err)
	}
	resp, err := h.service.EconomicCalendarService.Events(c.Request().Context(), filter)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", resp))
}

// RefreshEconomicCalendar forces a scrape regardless of cache age.
func (h *HttpAPIHandler) RefreshEconomicCalendar(c echo.Context) error {
	resp, err := h.service.EconomicCalendarService.Refresh(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, fmt.Errorf("%w: %v", service.ErrCalendarUnavailable, err))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Economic calendar refreshed", resp))
}

func (h *HttpAPIHandler) CurrencyStrength(c echo.Context) error {
	strengths, err := h.service.CurrencyStrengthService.Get(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", strengths))
}

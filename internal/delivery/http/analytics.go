package http

import (
	"net/http"
	"strings"
	"time"

	"trading-journal/internal/analytics"
	"trading-journal/internal/dto"
	"trading-journal/pkg/middleware"
	"trading-journal/pkg/utils"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAnalytics(base *echo.Group) {
	base.GET("/calendar", h.MonthlyCalendar)

	m := base.Group("/metrics")
	{
		m.GET("/performance", h.Performance)
		m.GET("/symbols", h.SymbolBreakdown)
		m.GET("/series", h.Series)
	}
}

// MonthlyCalendar returns one summary per day of the requested month, current month by default.
// An optional tz query parameter moves day boundaries into that IANA zone.
func (h *HttpAPIHandler) MonthlyCalendar(c echo.Context) error {
	var q dto.CalendarQuery
	if err := h.bindAndValidate(c, &q); err != nil {
		return badRequest(c, err)
	}
	loc := utils.LoadLocation(c.QueryParam("tz"))
	anchor, err := utils.ParseMonth(q.Month, loc, time.Now())
	if err != nil {
		return badRequest(c, err)
	}

	days, err := h.service.JournalService.MonthlyCalendar(c.Request().Context(), middleware.UserID(c), anchor)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", dto.CalendarResponse{
		Month: utils.FormatMonth(anchor),
		Days:  days,
	}))
}

func (h *HttpAPIHandler) Performance(c echo.Context) error {
	param, err := h.tradesParam(c)
	if err != nil {
		return badRequest(c, err)
	}
	resp, err := h.service.JournalService.Metrics(c.Request().Context(), param)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", resp))
}

func (h *HttpAPIHandler) SymbolBreakdown(c echo.Context) error {
	param, err := h.tradesParam(c)
	if err != nil {
		return badRequest(c, err)
	}
	stats, err := h.service.JournalService.SymbolBreakdown(c.Request().Context(), param)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", stats))
}

// Series buckets the journal by period. Day boundaries follow the same tz parameter as the calendar.
func (h *HttpAPIHandler) Series(c echo.Context) error {
	var q dto.SeriesQuery
	if err := h.bindAndValidate(c, &q); err != nil {
		return badRequest(c, err)
	}
	if strings.TrimSpace(q.Period) == "" {
		q.Period = h.cfg.Journal.DefaultPeriod
	}
	period, err := analytics.ParsePeriod(q.Period)
	if err != nil {
		return h.errorResponse(c, err)
	}

	loc := utils.LoadLocation(c.QueryParam("tz"))
	resp, err := h.service.JournalService.Series(c.Request().Context(), middleware.UserID(c), period, loc)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", resp))
}

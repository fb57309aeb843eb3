package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"trading-journal/internal/dto"
	"trading-journal/pkg/middleware"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

func (h *HttpAPIHandler) SetupTrades(base *echo.Group) {
	trades := base.Group("/trades")
	{
		trades.GET("", h.ListTrades)
		trades.POST("", h.CreateTrade)
		trades.PUT("/:id", h.UpdateTrade)
		trades.DELETE("/:id", h.DeleteTrade)
		trades.DELETE("/month/:year/:month", h.ClearMonth)
	}
}

func (h *HttpAPIHandler) ListTrades(c echo.Context) error {
	param, err := h.tradesParam(c)
	if err != nil {
		return badRequest(c, err)
	}
	trades, err := h.service.JournalService.ListTrades(c.Request().Context(), param)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", trades))
}

func (h *HttpAPIHandler) CreateTrade(c echo.Context) error {
	var req dto.SaveTradeRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return badRequest(c, err)
	}
	req.ID = ""
	return h.saveTrade(c, req, http.StatusCreated)
}

func (h *HttpAPIHandler) UpdateTrade(c echo.Context) error {
	var req dto.SaveTradeRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return badRequest(c, err)
	}
	req.ID = c.Param("id")
	return h.saveTrade(c, req, http.StatusOK)
}

func (h *HttpAPIHandler) saveTrade(c echo.Context, req dto.SaveTradeRequest, status int) error {
	trade, err := h.service.JournalService.SaveTrade(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(status, dto.NewBaseResponse(status, "Trade saved", trade))
}

func (h *HttpAPIHandler) DeleteTrade(c echo.Context) error {
	if err := h.service.JournalService.DeleteTrade(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Trade deleted", nil))
}

func (h *HttpAPIHandler) ClearMonth(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return badRequest(c, fmt.Errorf("invalid year %q", c.Param("year")))
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return badRequest(c, fmt.Errorf("invalid month %q", c.Param("month")))
	}

	deleted, err := h.service.JournalService.ClearMonth(c.Request().Context(), middleware.UserID(c), year, time.Month(month))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Month cleared", dto.ClearMonthResponse{
		Year:    year,
		Month:   month,
		Deleted: deleted,
	}))
}

// tradesParam reads the shared from/to/symbol filter. Both dates are UTC calendar days and
// "to" is inclusive.
func (h *HttpAPIHandler) tradesParam(c echo.Context) (dto.GetTradesParam, error) {
	var q dto.ListTradesQuery
	if err := h.bindAndValidate(c, &q); err != nil {
		return dto.GetTradesParam{}, err
	}

	param := dto.GetTradesParam{
		UserID:  middleware.UserID(c),
		Symbol:  q.Symbol,
		SetupID: q.Setup,
	}
	if q.From != "" {
		from, err := time.Parse(dateLayout, q.From)
		if err != nil {
			return dto.GetTradesParam{}, err
		}
		param.From = &from
	}
	if q.To != "" {
		to, err := time.Parse(dateLayout, q.To)
		if err != nil {
			return dto.GetTradesParam{}, err
		}
		to = to.AddDate(0, 0, 1)
		param.To = &to
	}
	if param.From != nil && param.To != nil && !param.From.Before(*param.To) {
		return dto.GetTradesParam{}, fmt.Errorf("from must not be after to")
	}
	return param, nil
}

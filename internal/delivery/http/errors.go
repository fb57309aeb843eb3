package http

import (
	"errors"
	"net/http"

	"trading-journal/internal/analytics"
	"trading-journal/internal/dto"
	"trading-journal/internal/repository"
	"trading-journal/internal/service"
	"trading-journal/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) errorResponse(c echo.Context, err error) error {
	var resp *dto.BaseResponse
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, analytics.ErrUnknownPeriod):
		resp = dto.NewBadRequestResponse(err.Error())
	case errors.Is(err, repository.ErrTradeNotFound), errors.Is(err, repository.ErrSetupNotFound):
		resp = dto.NewNotFoundResponse(err.Error())
	case errors.Is(err, service.ErrCalendarUnavailable):
		resp = dto.NewBaseResponse(http.StatusServiceUnavailable, err.Error(), nil)
	default:
		h.log.ErrorContext(c.Request().Context(), "Request failed",
			logger.ErrorField(err),
			logger.StringField("path", c.Path()),
		)
		resp = dto.NewInternalErrorResponse("internal server error")
	}
	return c.JSON(resp.Code, resp)
}

package http

import (
	"context"
	"net/http"

	"trading-journal/config"
	"trading-journal/internal/dto"
	"trading-journal/internal/service"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/metrics"
	"trading-journal/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type HttpAPIHandler struct {
	ctx       context.Context
	cfg       *config.Config
	log       *logger.Logger
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	echo *echo.Echo,
	validator *goValidator.Validate,
	service *service.Service,
) *HttpAPIHandler {
	return &HttpAPIHandler{
		ctx:       ctx,
		cfg:       cfg,
		log:       log,
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.HideBanner = true
	h.echo.Use(echoMiddleware.Recover())
	h.echo.Use(echoMiddleware.RequestID())
	h.echo.Use(metrics.Middleware())
	if len(h.cfg.API.AllowOrigins) > 0 {
		h.echo.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
			AllowOrigins: h.cfg.API.AllowOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, h.cfg.API.UserHeader},
		}))
	}

	h.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", nil))
	})
	h.echo.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	base := h.echo.Group("/api/v1",
		middleware.NewRateLimiterMiddleware(h.cfg.API),
		middleware.RequireUser(h.cfg.API.UserHeader),
		middleware.RequestLogger(h.log),
	)
	h.SetupTrades(base)
	h.SetupAnalytics(base)
	h.SetupSettings(base)
	h.SetupSetups(base)
	h.SetupMarket(base)
}

// bindAndValidate binds path, query and body into req and runs the struct validation tags.
func (h *HttpAPIHandler) bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return h.validator.Struct(req)
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
}

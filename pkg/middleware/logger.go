package middleware

import (
	"trading-journal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogger stores a logger tagged with the request id and journal user in the
// request context, so *Context log calls further down carry both.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqLog := log.With(
				logger.StringField("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				logger.StringField("user_id", UserID(c)),
			)
			req := c.Request()
			c.SetRequest(req.WithContext(logger.NewContext(req.Context(), reqLog)))
			return next(c)
		}
	}
}

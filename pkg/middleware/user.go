package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const userIDKey = "journal_user_id"

// RequireUser rejects requests that do not carry the configured user header.
func RequireUser(header string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := strings.TrimSpace(c.Request().Header.Get(header))
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, Response{
					Status:  http.StatusUnauthorized,
					Message: "Missing " + header + " header",
				})
			}
			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the id stored by RequireUser, or "" outside that middleware.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}

package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"orders/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// BearerAuth returns middleware that guards mutating requests with a
// static bearer token. Read requests pass through untouched.
func BearerAuth(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			switch ctx.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodDelete:
			default:
				return next(ctx)
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Detail: "missing bearer token",
				})
			}

			presented := strings.TrimPrefix(header, bearerPrefix)
			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Detail: "invalid bearer token",
				})
			}

			return next(ctx)
		}
	}
}

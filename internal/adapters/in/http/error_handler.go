package http

import (
	"errors"
	"fmt"
	"net/http"

	"orders/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler returns an error handler aligned with the API error
// contract. The generated parameter binders report malformed path and query
// values as 400, but the contract treats all malformed input as 422 with a
// detail body. Everything else falls through to echo's default handling.
func NewHTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusBadRequest {
			_ = ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
				Detail: fmt.Sprintf("%v", httpErr.Message),
			})
			return
		}

		e.DefaultHTTPErrorHandler(err, ctx)
	}
}

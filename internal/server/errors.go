package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/activityboard/internal/middleware"
)

// setupErrorHandling logs failures before echo writes the error response.
// Errors that are not an *echo.HTTPError were not anticipated by any handler
// and are logged with a stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		ctx := c.Request().Context()
		logger := middleware.FromContext(ctx)

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			if he.Code >= http.StatusInternalServerError {
				logger.ErrorContext(ctx, "Internal Server Error", "error", err, "status", he.Code)
			} else {
				logger.DebugContext(ctx, "Request rejected", "error", err, "status", he.Code)
			}
		default:
			logger.ErrorContext(ctx, "Internal Server Error (Unhandled)", "error", err, "stack_trace", string(debug.Stack()))
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}

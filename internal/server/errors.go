package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/portview/internal/middleware"
)

// setupErrorHandling installs an error handler that logs unexpected errors
// with a stack trace. *echo.HTTPError values keep their status and message.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"stack_trace", string(debug.Stack()),
			)
			he = echo.NewHTTPError(http.StatusInternalServerError)
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(he.Code)
		} else {
			respErr = c.String(he.Code, http.StatusText(he.Code))
		}
		if respErr != nil {
			slog.Error("Failed to write error response", "error", respErr)
		}
	}
}

package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	appmiddleware "github.com/nfrund/actorkit-site/internal/middleware"
)

// setupErrorHandling installs the central error handler. Expected HTTP errors
// are logged at warn level; anything else is logged with a stack trace and
// answered with 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := appmiddleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			logger.Warn("HTTP error",
				"status", he.Code,
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"error", err,
			)
			e.DefaultHTTPErrorHandler(he, c)
			return
		}

		logger.Error("Internal Server Error (Unhandled)",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"error", err,
			"stack_trace", string(debug.Stack()),
		)
		e.DefaultHTTPErrorHandler(echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err), c)
	}
}

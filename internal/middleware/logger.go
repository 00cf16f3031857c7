package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey string

const loggerKey = contextKey("logger")

// Logger is a middleware that injects a request-scoped logger into the context.
// This logger is pre-configured with the request ID from the RequestID middleware
// and the request path. It should be placed after the RequestID middleware in the chain.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		reqID := c.Response().Header().Get(echo.HeaderXRequestID)
		attrs := []any{"request_id", reqID, "path", req.URL.Path}
		if req.Header.Get("HX-Request") == "true" {
			attrs = append(attrs, "htmx", true)
		}
		requestLogger := slog.Default().With(attrs...)

		// Create a new context with the logger and set it on the request.
		newCtx := context.WithValue(req.Context(), loggerKey, requestLogger)
		c.SetRequest(req.WithContext(newCtx))

		return next(c)
	}
}

// FromContext returns the request-scoped logger, or the default logger when
// none was injected.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/actorkit-site/internal/config"
)

// HeaderHXRequest and HeaderHXRedirect are the htmx request/response headers.
const (
	HeaderHXRequest  = "HX-Request"
	HeaderHXRedirect = "HX-Redirect"
)

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get(HeaderHXRequest) == "true"
}

// responseNavigator realises a navigation on the HTTP response of the
// current request. It decides the status the placeholder is served with.
type responseNavigator struct {
	c       echo.Context
	mode    string
	status  int
	refresh bool
}

func newResponseNavigator(c echo.Context, mode string) *responseNavigator {
	return &responseNavigator{c: c, mode: mode, status: http.StatusOK}
}

func (n *responseNavigator) Navigate(_ context.Context, url string) {
	header := n.c.Response().Header()
	switch {
	case isHTMX(n.c):
		header.Set(HeaderHXRedirect, url)
		n.status = http.StatusOK
	case n.mode == config.RedirectModeClient:
		n.refresh = true
		n.status = http.StatusOK
	default:
		header.Set(echo.HeaderLocation, url)
		n.status = http.StatusFound
	}
}

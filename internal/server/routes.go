package server

import (
	"net/http"

	"github.com/nfrund/actorkit-site/internal/assets"
	"github.com/nfrund/actorkit-site/internal/handlers"
	appmiddleware "github.com/nfrund/actorkit-site/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := appmiddleware.RateLimiter(s.cfg.GetRateLimit())

	s.E.GET("/health", handlers.Health)
	s.E.StaticFS("/static", assets.IOFS(s.assets))

	// Tab switches on the landing page. These are htmx fragments, not navigable pages.
	s.E.GET("/fragments/features/:slug", s.site.FeatureFragment, rateLimiter)
	s.E.GET("/fragments/code/:slug", s.site.CodeFragment, rateLimiter)

	// Every other path goes through the route table, including unknown ones.
	s.E.Match([]string{http.MethodGet, http.MethodHead}, "/*", s.site.Dispatch)
}

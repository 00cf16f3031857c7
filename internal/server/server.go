package server

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/actorkit-site/internal/config"
	"github.com/nfrund/actorkit-site/internal/handlers"
	"github.com/nfrund/actorkit-site/internal/highlight"
	appmiddleware "github.com/nfrund/actorkit-site/internal/middleware"
	"github.com/nfrund/actorkit-site/internal/redirect"
	"github.com/nfrund/actorkit-site/internal/rendering"
	"github.com/nfrund/actorkit-site/internal/routes"
	"github.com/spf13/afero"
)

// Dependencies holds everything the server is built from. They are created
// once at the composition root and passed in explicitly.
type Dependencies struct {
	Config      config.Provider
	Renderer    *rendering.UniversalRenderer
	Highlighter highlight.Highlighter
	Table       *routes.Table
	// Navigator receives every external navigation in addition to the HTTP response.
	Navigator redirect.Navigator
	Assets    afero.Fs
	Echo      *echo.Echo
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E      *echo.Echo
	cfg    config.Provider
	site   *handlers.SiteHandler
	assets afero.Fs
}

// New creates a new Server instance with its middleware chain and error
// handler installed. Routes are added by RegisterRoutes.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Assets == nil {
		return nil, errors.New("server: asset filesystem is required")
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.HidePort = true

	renderer := deps.Renderer
	if renderer == nil {
		renderer = rendering.NewUniversalRenderer()
	}
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()

	setupMiddleware(e)
	setupErrorHandling(e)

	site := handlers.NewSiteHandler(handlers.SiteDependencies{
		Table:        deps.Table,
		Renderer:     renderer,
		Highlighter:  deps.Highlighter,
		Navigator:    deps.Navigator,
		RedirectMode: deps.Config.GetRedirectMode(),
		BaseURL:      deps.Config.GetAppBaseURL(),
	})

	return &Server{
		E:      e,
		cfg:    deps.Config,
		site:   site,
		assets: deps.Assets,
	}, nil
}

func setupMiddleware(e *echo.Echo) {
	// No RemoveTrailingSlash here: routes.Table.Resolve is the only place a
	// trailing slash is dropped, so "/docs//" stays a 404.
	e.Use(middleware.RequestID())
	// Must come after RequestID so the request-scoped logger carries the id.
	e.Use(appmiddleware.Logger)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			appmiddleware.FromContext(c.Request().Context()).Error("Recovered from panic",
				"error", err,
				"stack_trace", string(stack),
			)
			return err
		},
	}))
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())
}

// Package app is the composition root: it builds the shared services once in
// a samber/do injector and hands them to the server explicitly.
package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/nfrund/actorkit-site/internal/assets"
	"github.com/nfrund/actorkit-site/internal/audit"
	"github.com/nfrund/actorkit-site/internal/config"
	"github.com/nfrund/actorkit-site/internal/highlight"
	"github.com/nfrund/actorkit-site/internal/pubsub"
	"github.com/nfrund/actorkit-site/internal/rendering"
	"github.com/nfrund/actorkit-site/internal/routes"
	"github.com/nfrund/actorkit-site/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// App owns the injector and the server built from it.
type App struct {
	injector *do.RootScope
	cfg      config.Provider
	Server   *server.Server
}

// eventBus is the in-process bus together with the audit subscription
// running on it.
type eventBus struct {
	*pubsub.WatermillBridge
	cancel context.CancelFunc
}

// Shutdown stops the audit subscriber and closes the bus.
func (b *eventBus) Shutdown() error {
	b.cancel()
	return b.Close()
}

// New wires the application. static is the embedded asset filesystem, used
// unless the configuration points at a directory on disk.
func New(cfg config.Provider, static fs.FS) (*App, error) {
	i := do.New()

	do.ProvideValue[config.Provider](i, cfg)
	do.ProvideValue[*routes.Table](i, routes.Default())
	do.Provide[*rendering.UniversalRenderer](i, func(do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide[highlight.Highlighter](i, func(do.Injector) (highlight.Highlighter, error) {
		return highlight.NewCache(highlight.NewChroma(highlight.DefaultStyle)), nil
	})
	do.Provide[afero.Fs](i, func(i do.Injector) (afero.Fs, error) {
		return assets.New(static, do.MustInvoke[config.Provider](i).GetStaticDir())
	})
	do.Provide[*eventBus](i, newEventBus)
	do.Provide[*server.Server](i, newServer)

	srv, err := do.Invoke[*server.Server](i)
	if err != nil {
		i.Shutdown()
		return nil, fmt.Errorf("wire application: %w", err)
	}

	return &App{injector: i, cfg: cfg, Server: srv}, nil
}

func newEventBus(do.Injector) (*eventBus, error) {
	bridge := pubsub.NewWatermillBridge(slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	if err := audit.Subscribe(ctx, bridge, slog.Default()); err != nil {
		cancel()
		_ = bridge.Close()
		return nil, err
	}
	return &eventBus{WatermillBridge: bridge, cancel: cancel}, nil
}

func newServer(i do.Injector) (*server.Server, error) {
	bus, err := do.Invoke[*eventBus](i)
	if err != nil {
		return nil, err
	}
	static, err := do.Invoke[afero.Fs](i)
	if err != nil {
		return nil, err
	}

	srv, err := server.New(server.Dependencies{
		Config:      do.MustInvoke[config.Provider](i),
		Renderer:    do.MustInvoke[*rendering.UniversalRenderer](i),
		Highlighter: do.MustInvoke[highlight.Highlighter](i),
		Table:       do.MustInvoke[*routes.Table](i),
		Navigator:   audit.NewNavigator(bus),
		Assets:      static,
	})
	if err != nil {
		return nil, err
	}
	srv.RegisterRoutes()
	return srv, nil
}

// Run serves until a shutdown signal or ctx cancellation, then shuts down.
func (a *App) Run(ctx context.Context) error {
	runErr := a.Server.Start(ctx)
	if err := a.Shutdown(); err != nil {
		slog.Error("Shutdown finished with errors", "error", err)
		if runErr == nil {
			runErr = err
		}
	}
	return runErr
}

// Shutdown stops every service within the configured timeout. The injector
// stops dependents first, so the server drains before the bus closes.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.GetShutdownTimeout())
	defer cancel()

	report := a.injector.ShutdownWithContext(ctx)
	if report != nil && !report.Succeed {
		return report
	}
	slog.Info("Shutdown complete")
	return nil
}

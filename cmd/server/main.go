package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/actorkit-site/internal/app"
	"github.com/nfrund/actorkit-site/internal/config"
	"github.com/nfrund/actorkit-site/internal/logging"
	"github.com/nfrund/actorkit-site/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logging is not configured yet; the default handler writes to stderr.
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	a, err := app.New(cfg, web.FS)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := a.Run(context.Background()); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

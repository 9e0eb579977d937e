package main

import (
	"log/slog"

	"github.com/vango-dev/appshell"
	"github.com/vango-dev/appshell/internal/config"
	"github.com/vango-dev/appshell/internal/demo"
	"github.com/vango-dev/appshell/pkg/router"
	"github.com/vango-dev/appshell/pkg/server"
)

// buildRoot registers the demo pages and builds the root, which builds the
// store exactly once.
func buildRoot(logger *slog.Logger) (*appshell.Root, error) {
	r := router.New(router.WithLogger(logger))
	if err := demo.Routes(r); err != nil {
		return nil, err
	}
	return appshell.NewRoot(demo.NewStoreFactory(logger), r, appshell.WithLogger(logger))
}

// buildServer wires cfg into an HTTP host for root.
func buildServer(cfg *config.Config, root *appshell.Root, logger *slog.Logger) *server.Server {
	sc := server.DefaultConfig()
	sc.Address = cfg.Address()
	sc.ShutdownTimeout = cfg.ShutdownTimeout()
	sc.Title = cfg.Render.Title
	sc.Pretty = cfg.Render.Pretty
	sc.MetricsPath = ""
	if cfg.Metrics.Enabled {
		sc.MetricsPath = cfg.Metrics.Path
		sc.MetricsNamespace = cfg.Metrics.Namespace
	}
	sc.Tracing = cfg.Tracing.Enabled
	sc.TracerName = cfg.Tracing.ServiceName
	sc.Logger = logger
	sc.OnPage = demo.TrackVisits(root.Store(), logger)
	return server.New(root, sc)
}

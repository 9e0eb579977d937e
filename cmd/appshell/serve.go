package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/appshell/internal/config"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		port       int
		host       string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server.

The store is built once at startup. The server stops gracefully on
SIGINT or SIGTERM.

With tracing.enabled, spans go to the global OpenTelemetry tracer
provider. appshell registers none itself, so spans are dropped unless
the binary embedding it calls otel.SetTracerProvider.

Examples:
  appshell serve
  appshell serve --port=8080
  appshell serve --config=./deploy/appshell.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(configPath)
			if err != nil {
				return err
			}

			// Apply command-line overrides
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Render.Pretty = pretty
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to appshell.json (default ./appshell.json)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from appshell.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from appshell.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent rendered HTML")

	return cmd
}

// runServe serves cfg until ctx is done.
func runServe(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	logger := cfg.Logger(cmd.ErrOrStderr())

	root, err := buildRoot(logger)
	if err != nil {
		return err
	}
	srv := buildServer(cfg, root, logger)

	printBanner(cmd)
	success(cmd, "Serving %s on http://%s", cfg.Name, cfg.Address())
	info(cmd, "store %s", root.Store().ID())
	if cfg.Render.Pretty {
		info(cmd, "pretty HTML output")
	}
	for _, pattern := range root.Router().Routes() {
		info(cmd, "route %s", pattern)
	}

	if err := srv.ListenAndServe(ctx); err != nil {
		return err
	}
	info(cmd, "Shut down")
	return nil
}

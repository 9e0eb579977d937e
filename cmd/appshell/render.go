package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/appshell/internal/config"
	"github.com/vango-dev/appshell/pkg/router"
)

func renderCmd() *cobra.Command {
	var (
		configPath string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "render PATH",
		Short: "Render one page to stdout",
		Long: `Render the page for PATH through the same root the server uses
and write the HTML document to stdout.

Examples:
  appshell render /
  appshell render "/items/2?tab=specs" --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Render.Pretty = pretty
			}

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			root, err := buildRoot(logger)
			if err != nil {
				return err
			}

			loc := router.ParseLocation(args[0])
			m, err := buildServer(cfg, root, logger).RenderLocation(cmd.OutOrStdout(), loc)
			if err != nil {
				return err
			}
			if m == nil {
				warn(cmd, "No route matches %s", loc.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to appshell.json (default ./appshell.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent rendered HTML")

	return cmd
}

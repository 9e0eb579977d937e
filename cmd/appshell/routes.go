package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List registered route patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := buildRoot(slog.New(slog.NewTextHandler(io.Discard, nil)))
			if err != nil {
				return err
			}
			for _, pattern := range root.Router().Routes() {
				fmt.Fprintln(cmd.OutOrStdout(), pattern)
			}
			return nil
		},
	}
}

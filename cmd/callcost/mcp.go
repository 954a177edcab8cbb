package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/quibble-ai/callcost/pkg/config"
	"github.com/quibble-ai/callcost/pkg/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start callcost as an MCP server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries the protocol.
			rt, err := setup(configPath, func(l *config.LogConfig) {
				if l.Output == "stdout" {
					l.Output = "stderr"
				}
			})
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := mcp.New(rt.est, rt.cfg.Defaults, rt.cfg.Pricing.Usage, version, rt.logger)
			rt.logger.Info("mcp server listening on stdio")
			return srv.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	return cmd
}

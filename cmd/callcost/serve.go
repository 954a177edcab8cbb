package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/quibble-ai/callcost/pkg/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		listen     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web estimator and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(configPath, nil)
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			if listen != "" {
				rt.cfg.Listen = listen
			}

			srv, err := server.New(rt.cfg, rt.est, rt.logger)
			if err != nil {
				return fmt.Errorf("init server: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rt.logger.Info("starting callcost server",
				zap.String("listen", rt.cfg.Listen),
				zap.String("config", configPath))
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides config)")
	return cmd
}

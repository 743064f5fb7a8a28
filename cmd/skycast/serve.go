package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"skycast/internal/app"
	"skycast/internal/config"
	"skycast/internal/location"
	"skycast/internal/weather"
)

func newServeCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the skycast HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := weather.NewWeatherService(cfg, logger)
			if err != nil {
				return err
			}

			gate := location.NewGate(newSource(cfg, logger), logger)
			dash := app.NewDashboard(gate.Fix(), svc, logger)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go gate.Run(ctx)
			go dash.Run(ctx)

			api := NewApp(cfg, logger, dash)
			logger.Info("starting server", "addr", cfg.GetServerAddr())
			return api.Run(ctx, cfg.GetServerAddr())
		},
	}
}

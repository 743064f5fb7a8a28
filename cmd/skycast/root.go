package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"skycast/internal/app"
	"skycast/internal/config"
	"skycast/internal/location"
	"skycast/internal/render"
	"skycast/internal/types"
	"skycast/internal/weather"
)

func newRootCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "skycast",
		Short:        "Location-aware weather dashboard",
		Long:         "skycast acquires the host's position, fetches the forecast for it, and renders current, hourly, and ten-day conditions.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, cfg, logger)
		},
	}

	cmd.AddCommand(newServeCmd(cfg, logger))
	return cmd
}

// runOnce acquires a fix, fetches one forecast, renders the dashboard to
// stdout, and exits. Location or fetch failure renders the empty placeholder
// when the command is interrupted; there is no retry and no error output.
func runOnce(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
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

	select {
	case <-dash.Updates():
	case <-ctx.Done():
	}

	_, _, forecast := dash.Snapshot()
	render.Dashboard(cmd.OutOrStdout(), forecast, time.Now(), cfg.App.HourlyWindow)
	return nil
}

// newSource builds the configured position source
func newSource(cfg *config.Config, logger *slog.Logger) location.Source {
	if cfg.Location.Mode == config.LocationModeStatic {
		return location.NewStaticSource(types.NewCoords(cfg.Location.Latitude, cfg.Location.Longitude))
	}
	return location.NewIPSource(logger)
}

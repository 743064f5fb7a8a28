package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skycast/internal/config"
	"skycast/internal/types"
	"skycast/internal/weather"
)

// Snapshotter exposes the dashboard state the handlers read
type Snapshotter interface {
	Snapshot() (types.Coords, bool, *weather.Forecast)
}

// App encapsulates the HTTP API and its dependencies
type App struct {
	router    *gin.Engine
	logger    *slog.Logger
	cfg       *config.Config
	dashboard Snapshotter
}

// NewApp creates the HTTP API with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger, dashboard Snapshotter) *App {
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	a := &App{
		router:    router,
		logger:    logger.With("component", "http-api"),
		cfg:       cfg,
		dashboard: dashboard,
	}

	a.registerRoutes()
	return a
}

// Run serves the API until ctx is cancelled, then shuts down gracefully
func (a *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: a.router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

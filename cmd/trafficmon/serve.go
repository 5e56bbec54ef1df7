package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/macetwatch/traffic-monitor/internal/api"
	"github.com/macetwatch/traffic-monitor/internal/infrastructure/scheduler"
	"github.com/macetwatch/traffic-monitor/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server and the sweep scheduler",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.close(context.Background())

	if app.cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}

	sched := scheduler.New(app.cfg.Sweep.Interval, app.monitor, logger.Component("scheduler"))
	sched.Start(ctx)

	e := api.NewRouter(app.db, app.redis, app.monitor, app.cfg.JWTSecret, logger.Component("http"))

	go func() {
		app.log.Info().Str("port", app.cfg.Port).Msg("server starting")
		if err := e.Start(":" + app.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	app.log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		app.log.Error().Err(err).Msg("forced shutdown")
	}

	app.log.Info().Msg("server exited")
	return nil
}

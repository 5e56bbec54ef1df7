package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Collect one observation per monitored road and exit",
	RunE:  runSweep,
}

func runSweep(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.close(context.Background())

	summary, err := app.monitor.Sweep(ctx)
	if err != nil {
		return err
	}

	app.log.Info().
		Int("locations", summary.Locations).
		Int("recorded", summary.Recorded).
		Int("failed", summary.Failed).
		Dur("elapsed", summary.Elapsed).
		Msg("sweep complete")

	if summary.Recorded == 0 && summary.Failed > 0 {
		return fmt.Errorf("sweep recorded nothing: %d of %d segments failed", summary.Failed, summary.Locations)
	}
	return nil
}

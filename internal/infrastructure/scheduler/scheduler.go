package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/macetwatch/traffic-monitor/internal/core/ports"
)

const defaultInterval = 15 * time.Minute

// Scheduler triggers a traffic sweep at a fixed interval. The first sweep
// fires one full interval after start, never immediately.
type Scheduler struct {
	interval time.Duration
	monitor  ports.MonitorService
	log      zerolog.Logger
}

// New creates a Scheduler. If interval <= 0, defaultInterval is used.
func New(interval time.Duration, monitor ports.MonitorService, log zerolog.Logger) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{
		interval: interval,
		monitor:  monitor,
		log:      log,
	}
}

// Start launches the sweep loop in its own goroutine. The loop stops when
// ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go s.Run(ctx)
}

// Run blocks, sweeping every interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("sweep scheduler started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("sweep scheduler stopped")
			return
		case <-ticker.C:
			summary, err := s.monitor.Sweep(ctx)
			if err != nil {
				s.log.Error().Err(err).Msg("scheduled sweep failed")
				continue
			}
			s.log.Info().
				Int("locations", summary.Locations).
				Int("recorded", summary.Recorded).
				Int("failed", summary.Failed).
				Dur("elapsed", summary.Elapsed).
				Msg("scheduled sweep complete")
		}
	}
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
	"github.com/macetwatch/traffic-monitor/internal/core/ports"
)

// DefaultLookback is the baseline window used when no lookback is configured.
const DefaultLookback = 30 * 24 * time.Hour

const weeklyWindow = 7 * 24 * time.Hour

type historyService struct {
	repo     ports.ObservationRepository
	lookback time.Duration
	log      zerolog.Logger
}

// NewHistoryService returns a HistoryService with the given baseline lookback.
func NewHistoryService(repo ports.ObservationRepository, lookback time.Duration, log zerolog.Logger) ports.HistoryService {
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	return &historyService{repo: repo, lookback: lookback, log: log}
}

func (s *historyService) Record(ctx context.Context, obs *domain.Observation) error {
	if err := s.repo.Insert(ctx, obs); err != nil {
		s.log.Error().Err(err).Str("location", obs.Location).Msg("failed to store observation")
		return fmt.Errorf("record observation: %w", err)
	}

	s.log.Debug().
		Str("location", obs.Location).
		Str("severity", string(obs.Severity)).
		Msg("observation stored")
	return nil
}

// AverageDuration computes the baseline over [now-lookback, now]. An empty
// window surfaces as domain.ErrNoHistory, never as a zero average.
func (s *historyService) AverageDuration(ctx context.Context, locationKey string) (float64, error) {
	since := time.Now().UTC().Add(-s.lookback)
	return s.repo.AverageDurationSince(ctx, locationKey, since)
}

func (s *historyService) WeeklySummary(ctx context.Context) (*domain.TrafficSummary, error) {
	since := time.Now().UTC().Add(-weeklyWindow)
	summary, err := s.repo.SummarySince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("weekly summary: %w", err)
	}
	return summary, nil
}

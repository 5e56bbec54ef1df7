package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
	"github.com/macetwatch/traffic-monitor/internal/core/ports"
)

type trafficFetcher struct {
	provider ports.DirectionsProvider
	log      zerolog.Logger
}

// NewTrafficFetcher returns a TrafficFetcher backed by a directions provider.
func NewTrafficFetcher(provider ports.DirectionsProvider, log zerolog.Logger) ports.TrafficFetcher {
	return &trafficFetcher{provider: provider, log: log}
}

// Fetch measures the route and classifies the result. The baseline guard
// runs before the ratio so a degenerate provider answer can never divide
// by zero.
func (s *trafficFetcher) Fetch(ctx context.Context, origin, destination domain.Coordinates) (*domain.Observation, error) {
	estimate, err := s.provider.Directions(ctx, origin, destination)
	if err != nil {
		return nil, err
	}

	location := domain.LocationKey(origin, destination)
	if estimate.Duration <= 0 {
		return nil, fmt.Errorf("route %s: %w", location, domain.ErrZeroBaseline)
	}

	obs := &domain.Observation{
		Location:          location,
		DurationInTraffic: estimate.DurationInTraffic,
		DurationNormal:    estimate.Duration,
		Timestamp:         time.Now().UTC(),
	}
	obs.Severity = domain.ClassifySeverity(obs.IncreaseRatio())

	s.log.Debug().
		Str("location", obs.Location).
		Int("duration_in_traffic", obs.DurationInTraffic).
		Int("duration_normal", obs.DurationNormal).
		Str("severity", string(obs.Severity)).
		Msg("route measured")

	return obs, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
	"github.com/macetwatch/traffic-monitor/internal/core/ports"
)

// unusualThreshold is the increase ratio above which traffic counts as
// unusual. The comparison is strict: exactly 50% above baseline is still
// within range.
const unusualThreshold = 0.5

const (
	noHistoryExplanation   = "No historical data available"
	normalRangeExplanation = "Traffic is within normal range"
)

type anomalyService struct {
	history ports.HistoryService
	log     zerolog.Logger
}

// NewAnomalyService returns an AnomalyChecker backed by the history baseline.
func NewAnomalyService(history ports.HistoryService, log zerolog.Logger) ports.AnomalyChecker {
	return &anomalyService{history: history, log: log}
}

// Check compares a current duration against the location's historical
// average. A missing or zero-valued baseline yields the no-data verdict,
// not a failure.
func (s *anomalyService) Check(ctx context.Context, currentDuration int, locationKey string) (*ports.AnomalyResult, error) {
	avg, err := s.history.AverageDuration(ctx, locationKey)
	if errors.Is(err, domain.ErrNoHistory) {
		return &ports.AnomalyResult{Unusual: false, Explanation: noHistoryExplanation}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("anomaly check %s: %w", locationKey, err)
	}
	if avg == 0 {
		return &ports.AnomalyResult{Unusual: false, Explanation: noHistoryExplanation}, nil
	}

	increaseRatio := (float64(currentDuration) - avg) / avg
	if increaseRatio > unusualThreshold {
		s.log.Debug().
			Str("location", locationKey).
			Float64("increase_ratio", increaseRatio).
			Msg("unusual traffic detected")
		return &ports.AnomalyResult{
			Unusual:     true,
			Explanation: fmt.Sprintf("Traffic is %.1f%% higher than usual", increaseRatio*100),
		}, nil
	}

	return &ports.AnomalyResult{Unusual: false, Explanation: normalRangeExplanation}, nil
}

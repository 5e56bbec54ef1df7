package ports

import (
	"context"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
)

// TrafficFetcher measures current conditions between two points and turns
// the provider answer into a classified observation.
type TrafficFetcher interface {
	Fetch(ctx context.Context, origin, destination domain.Coordinates) (*domain.Observation, error)
}

// HistoryService records observations and serves baseline aggregates.
type HistoryService interface {
	Record(ctx context.Context, obs *domain.Observation) error

	// AverageDuration returns the mean duration_in_traffic for a location
	// over the configured lookback window. domain.ErrNoHistory signals an
	// empty window; the caller decides what absence means.
	AverageDuration(ctx context.Context, locationKey string) (float64, error)

	// WeeklySummary aggregates the trailing seven days across all locations.
	WeeklySummary(ctx context.Context) (*domain.TrafficSummary, error)
}

// AnomalyResult is the comparator verdict for one measurement.
type AnomalyResult struct {
	Unusual     bool
	Explanation string
}

// AnomalyChecker compares a current measurement against the location's
// historical baseline.
type AnomalyChecker interface {
	Check(ctx context.Context, currentDuration int, locationKey string) (*AnomalyResult, error)
}

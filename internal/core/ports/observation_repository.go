package ports

import (
	"context"
	"time"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
)

// ObservationRepository defines persistence for the append-only observation
// history.
type ObservationRepository interface {
	// Insert appends one observation. Repeated measurements for the same
	// location are expected; stored observations are never updated.
	Insert(ctx context.Context, obs *domain.Observation) error

	// AverageDurationSince returns the mean duration_in_traffic for a
	// location over observations with timestamp >= since. Returns
	// domain.ErrNoHistory when the window holds no observations.
	AverageDurationSince(ctx context.Context, locationKey string, since time.Time) (float64, error)

	// SummarySince aggregates observations across all locations with
	// timestamp >= since. An empty window yields a zero-count summary,
	// not an error.
	SummarySince(ctx context.Context, since time.Time) (*domain.TrafficSummary, error)
}

// SubscriptionRepository provisions the subscription schema. The alerting
// flow that will consume it does not exist yet, so the interface carries no
// read or write operations.
type SubscriptionRepository interface {
	EnsureIndexes(ctx context.Context) error
}

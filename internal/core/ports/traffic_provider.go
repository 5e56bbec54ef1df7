package ports

import (
	"context"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
)

// RouteEstimate is a provider's travel-time answer for one route, in seconds.
type RouteEstimate struct {
	// Duration is the free-flow baseline without traffic.
	Duration int
	// DurationInTraffic is the expected duration under current conditions.
	DurationInTraffic int
}

// DirectionsProvider answers live travel-time queries between two points.
type DirectionsProvider interface {
	Directions(ctx context.Context, origin, destination domain.Coordinates) (*RouteEstimate, error)
}

// Geocoder resolves a free-form address to coordinates. Implementations
// scope the lookup to the monitored city.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

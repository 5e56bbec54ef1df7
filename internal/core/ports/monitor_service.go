package ports

import (
	"context"
	"time"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
)

// SweepSummary reports the outcome of one collection cycle.
type SweepSummary struct {
	Locations int           `json:"locations"`
	Recorded  int           `json:"recorded"`
	Failed    int           `json:"failed"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed"`
}

// LocationStatus is the live assessment of one monitored segment.
type LocationStatus struct {
	Name        string
	LocationKey string
	Observation domain.Observation
	Unusual     bool
	Explanation string
}

// TrafficReport is the combined live report over all monitored segments.
// Failed lists the names of segments that could not be measured; their
// absence from Statuses never aborts the report.
type TrafficReport struct {
	GeneratedAt time.Time
	Statuses    []LocationStatus
	Failed      []string
	Text        string
}

// LocationReport is the live report for a single monitored segment.
type LocationReport struct {
	Status LocationStatus
	Text   string
}

// RouteQueryInput is an on-demand route request from the transport layer.
// DestinationText is free-form; the geocoder scopes it to the monitored city.
type RouteQueryInput struct {
	Origin          domain.Coordinates
	DestinationText string
}

// RouteReport answers an on-demand route query.
type RouteReport struct {
	DestinationText string
	Destination     domain.Coordinates
	Observation     domain.Observation
	Unusual         bool
	Explanation     string
	Text            string
}

// StatsReport is the weekly statistics view.
type StatsReport struct {
	Summary domain.TrafficSummary
	Text    string
}

// MonitoredLocationInfo describes a configured segment for transports that
// build selection menus.
type MonitoredLocationInfo struct {
	Name        string             `json:"name"`
	LocationKey string             `json:"location_key"`
	Origin      domain.Coordinates `json:"origin"`
	Destination domain.Coordinates `json:"destination"`
}

// MonitorService drives collection sweeps and the transport-facing traffic
// operations. Every report carries a rendered Text ready for display.
type MonitorService interface {
	// Sweep measures every monitored segment and stores what it can. A
	// failing segment is counted and logged; it never aborts the others.
	Sweep(ctx context.Context) (*SweepSummary, error)

	TrafficReport(ctx context.Context) (*TrafficReport, error)
	LocationReport(ctx context.Context, locationKey string) (*LocationReport, error)
	RouteQuery(ctx context.Context, input RouteQueryInput) (*RouteReport, error)
	WeeklyStats(ctx context.Context) (*StatsReport, error)

	// Locations lists the configured segments.
	Locations() []MonitoredLocationInfo
}

// Package metrics defines and registers all custom Prometheus metrics for
// the traffic monitor. It is the single source of truth for metric names,
// labels, and help strings; importing the package registers everything with
// the default Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "traffic"

// ── Sweep metrics ─────────────────────────────────────────────────────────────

// SweepsTotal counts completed collection sweeps, successful or not.
var SweepsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweeps_total",
		Help:      "Total number of collection sweeps over the monitored roads.",
	},
)

// SweepDuration measures how long one full sweep takes across all segments.
var SweepDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sweep_duration_seconds",
		Help:      "Duration of a full collection sweep.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// FetchFailuresTotal counts failed segment measurements.
// Label:
//   - reason: "unreachable", "no_route", "malformed", "zero_baseline", or "other"
var FetchFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_failures_total",
		Help:      "Total number of failed travel-time measurements, by reason.",
	},
	[]string{"reason"},
)

// ObservationsRecordedTotal counts observations appended to the history.
// Label:
//   - severity: classified severity of the stored observation
var ObservationsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "observations_recorded_total",
		Help:      "Total number of observations stored, by severity.",
	},
	[]string{"severity"},
)

// ── Query metrics ─────────────────────────────────────────────────────────────

// RouteQueriesTotal counts on-demand route queries.
// Label:
//   - outcome: "ok", "geocode_failed", "fetch_failed", "store_failed", or "compare_failed"
var RouteQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "route_queries_total",
		Help:      "Total number of on-demand route queries, by outcome.",
	},
	[]string{"outcome"},
)

// GeocodeCacheTotal counts geocode cache lookups.
// Label:
//   - result: "hit", "miss", or "error"
var GeocodeCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_cache_total",
		Help:      "Total number of geocode cache lookups, labelled by result.",
	},
	[]string{"result"},
)

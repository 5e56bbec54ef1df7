package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/macetwatch/traffic-monitor/internal/api/metrics"
	"github.com/macetwatch/traffic-monitor/internal/core/domain"
	"github.com/macetwatch/traffic-monitor/internal/core/ports"
)

const defaultSweepWorkers = 4

// MonitorService orchestrates collection sweeps and the transport-facing
// traffic operations over a fixed set of monitored road segments.
type MonitorService struct {
	fetcher  ports.TrafficFetcher
	history  ports.HistoryService
	anomaly  ports.AnomalyChecker
	geocoder ports.Geocoder
	roads    []domain.MonitoredLocation
	byKey    map[string]domain.MonitoredLocation
	workers  int
	log      zerolog.Logger
}

func NewMonitorService(
	fetcher ports.TrafficFetcher,
	history ports.HistoryService,
	anomaly ports.AnomalyChecker,
	geocoder ports.Geocoder,
	roads []domain.MonitoredLocation,
	workers int,
	log zerolog.Logger,
) *MonitorService {
	if len(roads) == 0 {
		roads = domain.DefaultMajorRoads()
	}
	if workers <= 0 {
		workers = defaultSweepWorkers
	}

	byKey := make(map[string]domain.MonitoredLocation, len(roads))
	for _, road := range roads {
		byKey[road.Key()] = road
	}

	return &MonitorService{
		fetcher:  fetcher,
		history:  history,
		anomaly:  anomaly,
		geocoder: geocoder,
		roads:    roads,
		byKey:    byKey,
		workers:  workers,
		log:      log,
	}
}

// Sweep measures every monitored segment once and appends the successful
// measurements to the history. Segments are independent: a failure is
// counted and logged, and the rest of the sweep continues. Observations
// are append-only, so measuring segments concurrently is safe.
func (s *MonitorService) Sweep(ctx context.Context) (*ports.SweepSummary, error) {
	started := time.Now().UTC()
	var recorded, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, road := range s.roads {
		g.Go(func() error {
			if err := s.collect(ctx, road); err != nil {
				failed.Add(1)
				metrics.FetchFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				s.log.Warn().Err(err).Str("road", road.Name).Str("location", road.Key()).Msg("sweep: segment failed")
				return nil
			}
			recorded.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	summary := &ports.SweepSummary{
		Locations: len(s.roads),
		Recorded:  int(recorded.Load()),
		Failed:    int(failed.Load()),
		StartedAt: started,
		Elapsed:   time.Since(started),
	}

	metrics.SweepsTotal.Inc()
	metrics.SweepDuration.Observe(summary.Elapsed.Seconds())

	s.log.Info().
		Int("locations", summary.Locations).
		Int("recorded", summary.Recorded).
		Int("failed", summary.Failed).
		Dur("elapsed", summary.Elapsed).
		Msg("sweep completed")

	return summary, nil
}

// collect measures one segment and appends the observation.
func (s *MonitorService) collect(ctx context.Context, road domain.MonitoredLocation) error {
	obs, err := s.fetcher.Fetch(ctx, road.Origin, road.Destination)
	if err != nil {
		return err
	}
	if err := s.history.Record(ctx, obs); err != nil {
		return err
	}
	metrics.ObservationsRecordedTotal.WithLabelValues(string(obs.Severity)).Inc()
	return nil
}

// TrafficReport measures every monitored segment and renders the combined
// report. Successful measurements are appended to the history exactly as a
// sweep would; segments that cannot be measured are listed by name.
func (s *MonitorService) TrafficReport(ctx context.Context) (*ports.TrafficReport, error) {
	report := &ports.TrafficReport{GeneratedAt: time.Now().UTC()}

	for _, road := range s.roads {
		status, err := s.assess(ctx, road)
		if err != nil {
			s.log.Warn().Err(err).Str("road", road.Name).Msg("report: segment unavailable")
			report.Failed = append(report.Failed, road.Name)
			continue
		}
		report.Statuses = append(report.Statuses, *status)
	}

	report.Text = renderTrafficReport(report)
	return report, nil
}

// LocationReport measures a single monitored segment by its location key.
func (s *MonitorService) LocationReport(ctx context.Context, locationKey string) (*ports.LocationReport, error) {
	road, ok := s.byKey[locationKey]
	if !ok {
		return nil, fmt.Errorf("location %q: %w", locationKey, domain.ErrLocationUnknown)
	}

	status, err := s.assess(ctx, road)
	if err != nil {
		return nil, err
	}

	return &ports.LocationReport{Status: *status, Text: renderLocationReport(status)}, nil
}

// RouteQuery geocodes a free-form destination, measures the route from the
// given origin, annotates the measurement against prior history, and then
// appends it. The comparison only sees observations recorded before this
// query. Every stage failure surfaces as a typed error; there are no retries.
func (s *MonitorService) RouteQuery(ctx context.Context, input ports.RouteQueryInput) (*ports.RouteReport, error) {
	destination, err := s.geocoder.Geocode(ctx, input.DestinationText)
	if err != nil {
		metrics.RouteQueriesTotal.WithLabelValues("geocode_failed").Inc()
		s.log.Warn().Err(err).Str("destination", input.DestinationText).Msg("route query: geocoding failed")
		return nil, err
	}

	obs, err := s.fetcher.Fetch(ctx, input.Origin, destination)
	if err != nil {
		metrics.RouteQueriesTotal.WithLabelValues("fetch_failed").Inc()
		s.log.Warn().Err(err).Str("destination", input.DestinationText).Msg("route query: measurement failed")
		return nil, err
	}

	report := &ports.RouteReport{
		DestinationText: input.DestinationText,
		Destination:     destination,
		Observation:     *obs,
	}

	verdict, err := s.anomaly.Check(ctx, obs.DurationInTraffic, obs.Location)
	if err != nil {
		metrics.RouteQueriesTotal.WithLabelValues("compare_failed").Inc()
		return nil, err
	}
	report.Unusual = verdict.Unusual
	report.Explanation = verdict.Explanation

	if err := s.history.Record(ctx, obs); err != nil {
		metrics.RouteQueriesTotal.WithLabelValues("store_failed").Inc()
		return nil, err
	}
	metrics.ObservationsRecordedTotal.WithLabelValues(string(obs.Severity)).Inc()

	report.Text = renderRouteReport(report)
	metrics.RouteQueriesTotal.WithLabelValues("ok").Inc()
	return report, nil
}

// WeeklyStats renders the trailing seven-day summary. An empty window is a
// valid zero-count summary, not an error.
func (s *MonitorService) WeeklyStats(ctx context.Context) (*ports.StatsReport, error) {
	summary, err := s.history.WeeklySummary(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.StatsReport{Summary: *summary, Text: renderStatsReport(summary)}, nil
}

// Locations lists the configured segments.
func (s *MonitorService) Locations() []ports.MonitoredLocationInfo {
	infos := make([]ports.MonitoredLocationInfo, 0, len(s.roads))
	for _, road := range s.roads {
		infos = append(infos, ports.MonitoredLocationInfo{
			Name:        road.Name,
			LocationKey: road.Key(),
			Origin:      road.Origin,
			Destination: road.Destination,
		})
	}
	return infos
}

// assess measures one segment, stores the observation, and annotates it
// against the historical baseline. The observation is stored before the
// comparison, mirroring the collection order of a sweep. A failing anomaly
// check downgrades to an unannotated status instead of losing the report.
func (s *MonitorService) assess(ctx context.Context, road domain.MonitoredLocation) (*ports.LocationStatus, error) {
	obs, err := s.fetcher.Fetch(ctx, road.Origin, road.Destination)
	if err != nil {
		return nil, err
	}
	if err := s.history.Record(ctx, obs); err != nil {
		return nil, err
	}
	metrics.ObservationsRecordedTotal.WithLabelValues(string(obs.Severity)).Inc()

	status := &ports.LocationStatus{
		Name:        road.Name,
		LocationKey: obs.Location,
		Observation: *obs,
	}

	verdict, err := s.anomaly.Check(ctx, obs.DurationInTraffic, obs.Location)
	if err != nil {
		s.log.Warn().Err(err).Str("location", obs.Location).Msg("anomaly check unavailable")
		return status, nil
	}
	status.Unusual = verdict.Unusual
	status.Explanation = verdict.Explanation
	return status, nil
}

// failureReason maps a collection error onto a metric label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrProviderUnavailable):
		return "unreachable"
	case errors.Is(err, domain.ErrNoRoute):
		return "no_route"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, domain.ErrZeroBaseline):
		return "zero_baseline"
	default:
		return "other"
	}
}

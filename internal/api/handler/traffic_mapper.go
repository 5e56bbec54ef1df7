package handler

import (
	"github.com/macetwatch/traffic-monitor/internal/core/domain"
	"github.com/macetwatch/traffic-monitor/internal/core/ports"
)

// --- Request → Service input ---

// toRouteQueryInput assumes the request passed validation, so the origin
// pointers are non-nil.
func toRouteQueryInput(req routeQueryRequest) ports.RouteQueryInput {
	return ports.RouteQueryInput{
		Origin:          domain.Coordinates{Lat: *req.Origin.Lat, Lng: *req.Origin.Lng},
		DestinationText: req.Destination,
	}
}

// --- Service result → HTTP response ---

func toObservationResponse(o domain.Observation) observationResponse {
	return observationResponse{
		DurationInTrafficSecs: o.DurationInTraffic,
		DurationNormalSecs:    o.DurationNormal,
		Severity:              string(o.Severity),
		MeasuredAt:            o.Timestamp.UTC(),
	}
}

func toRoadStatusResponse(s ports.LocationStatus) roadStatusResponse {
	return roadStatusResponse{
		Name:        s.Name,
		LocationKey: s.LocationKey,
		Observation: toObservationResponse(s.Observation),
		Unusual:     s.Unusual,
		Explanation: s.Explanation,
	}
}

func toTrafficReportResponse(r *ports.TrafficReport) trafficReportResponse {
	roads := make([]roadStatusResponse, len(r.Statuses))
	for i, s := range r.Statuses {
		roads[i] = toRoadStatusResponse(s)
	}
	return trafficReportResponse{
		GeneratedAt: r.GeneratedAt.UTC(),
		Roads:       roads,
		Failed:      r.Failed,
		Text:        r.Text,
	}
}

func toLocationReportResponse(r *ports.LocationReport) locationReportResponse {
	return locationReportResponse{
		Road: toRoadStatusResponse(r.Status),
		Text: r.Text,
	}
}

func toRouteReportResponse(r *ports.RouteReport) routeReportResponse {
	return routeReportResponse{
		Destination: r.DestinationText,
		Resolved:    r.Destination,
		Observation: toObservationResponse(r.Observation),
		Unusual:     r.Unusual,
		Explanation: r.Explanation,
		Text:        r.Text,
	}
}

func toStatsResponse(r *ports.StatsReport) statsResponse {
	return statsResponse{
		TotalRecords:    r.Summary.Count,
		AvgDurationSecs: r.Summary.AvgDuration,
		SevereCount:     r.Summary.SevereCount,
		SeverePercent:   r.Summary.SeverePercent(),
		Text:            r.Text,
	}
}

func toSweepResponse(s *ports.SweepSummary) sweepResponse {
	return sweepResponse{
		Locations: s.Locations,
		Recorded:  s.Recorded,
		Failed:    s.Failed,
		StartedAt: s.StartedAt.UTC(),
		ElapsedMs: s.Elapsed.Milliseconds(),
	}
}

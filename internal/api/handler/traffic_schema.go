package handler

import (
	"time"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Requests ---

// Lat and Lng are pointers so that the zero coordinate is distinguishable
// from an absent field.
type coordinatesRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

type routeQueryRequest struct {
	Origin      coordinatesRequest `json:"origin"      validate:"required"`
	Destination string             `json:"destination" validate:"required,min=2"`
}

// --- Responses ---

type observationResponse struct {
	DurationInTrafficSecs int       `json:"duration_in_traffic_secs"`
	DurationNormalSecs    int       `json:"duration_normal_secs"`
	Severity              string    `json:"severity"`
	MeasuredAt            time.Time `json:"measured_at"`
}

type roadStatusResponse struct {
	Name        string              `json:"name"`
	LocationKey string              `json:"location_key"`
	Observation observationResponse `json:"observation"`
	Unusual     bool                `json:"unusual"`
	Explanation string              `json:"explanation,omitempty"`
}

type trafficReportResponse struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Roads       []roadStatusResponse `json:"roads"`
	Failed      []string             `json:"failed,omitempty"`
	Text        string               `json:"text"`
}

type locationReportResponse struct {
	Road roadStatusResponse `json:"road"`
	Text string             `json:"text"`
}

type routeReportResponse struct {
	Destination string              `json:"destination"`
	Resolved    domain.Coordinates  `json:"resolved"`
	Observation observationResponse `json:"observation"`
	Unusual     bool                `json:"unusual"`
	Explanation string              `json:"explanation,omitempty"`
	Text        string              `json:"text"`
}

type statsResponse struct {
	TotalRecords    int64   `json:"total_records"`
	AvgDurationSecs float64 `json:"avg_duration_secs"`
	SevereCount     int64   `json:"severe_count"`
	SeverePercent   float64 `json:"severe_percent"`
	Text            string  `json:"text"`
}

type sweepResponse struct {
	Locations int       `json:"locations"`
	Recorded  int       `json:"recorded"`
	Failed    int       `json:"failed"`
	StartedAt time.Time `json:"started_at"`
	ElapsedMs int64     `json:"elapsed_ms"`
}

package domain

import (
	"errors"
	"strconv"
	"time"
)

// Collection pipeline failures. ErrNoHistory is not a failure: it signals an
// empty baseline window and is handled by callers, never logged as an error.
var ErrProviderUnavailable = errors.New("directions provider unreachable")
var ErrNoRoute = errors.New("no route returned by provider")
var ErrMalformedResponse = errors.New("malformed provider response")
var ErrZeroBaseline = errors.New("zero baseline duration")
var ErrNoHistory = errors.New("no historical data")
var ErrLocationUnknown = errors.New("monitored location not found")
var ErrAddressNotFound = errors.New("address not found")

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// String renders the point as "lat,lng" with the shortest exact float form.
// Location keys and provider queries both rely on this format.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// LocationKey derives the stable identity of a road segment from its two
// endpoints. Keys are opaque: they are stored and compared, never parsed.
func LocationKey(origin, destination Coordinates) string {
	return origin.String() + "-" + destination.String()
}

// MonitoredLocation is a fixed road segment measured on every sweep.
type MonitoredLocation struct {
	Name        string      `json:"name"`
	Origin      Coordinates `json:"origin"`
	Destination Coordinates `json:"destination"`
}

// Key returns the segment's location key.
func (m MonitoredLocation) Key() string {
	return LocationKey(m.Origin, m.Destination)
}

// Observation is a single travel-time measurement for a road segment.
// Observations are append-only; a stored observation is never updated.
type Observation struct {
	ID                string    `json:"id,omitempty" bson:"_id,omitempty"`
	Location          string    `json:"location" bson:"location"`
	DurationInTraffic int       `json:"duration_in_traffic" bson:"duration_in_traffic"`
	DurationNormal    int       `json:"duration_normal" bson:"duration_normal"`
	Timestamp         time.Time `json:"timestamp" bson:"timestamp"`
	Severity          Severity  `json:"severity" bson:"severity"`
}

// IncreaseRatio reports how much longer the measured travel time is than the
// free-flow baseline. Returns 0 when the baseline is zero.
func (o Observation) IncreaseRatio() float64 {
	if o.DurationNormal == 0 {
		return 0
	}
	return float64(o.DurationInTraffic-o.DurationNormal) / float64(o.DurationNormal)
}

// TrafficSummary aggregates observations over a time window. Count zero is a
// valid summary of an empty window.
type TrafficSummary struct {
	Count       int64   `json:"count"`
	AvgDuration float64 `json:"avg_duration"`
	SevereCount int64   `json:"severe_count"`
}

// SeverePercent returns the share of severe observations in the window.
func (t TrafficSummary) SeverePercent() float64 {
	if t.Count == 0 {
		return 0
	}
	return float64(t.SevereCount) / float64(t.Count) * 100
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
	"github.com/macetwatch/traffic-monitor/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubProvider struct {
	estimate *ports.RouteEstimate
	err      error
	calls    int
}

func (p *stubProvider) Directions(_ context.Context, _, _ domain.Coordinates) (*ports.RouteEstimate, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.estimate, nil
}

var (
	fetchOrigin      = domain.Coordinates{Lat: -6.2088, Lng: 106.8456}
	fetchDestination = domain.Coordinates{Lat: -6.2297, Lng: 106.8269}
)

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestTrafficFetcher_Fetch_BuildsObservation(t *testing.T) {
	provider := &stubProvider{estimate: &ports.RouteEstimate{Duration: 900, DurationInTraffic: 1200}}
	fetcher := NewTrafficFetcher(provider, zerolog.Nop())

	before := time.Now().UTC()
	obs, err := fetcher.Fetch(context.Background(), fetchOrigin, fetchDestination)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if obs.Location != domain.LocationKey(fetchOrigin, fetchDestination) {
		t.Errorf("unexpected location key: %q", obs.Location)
	}
	if obs.DurationInTraffic != 1200 || obs.DurationNormal != 900 {
		t.Errorf("durations not carried over: %+v", obs)
	}
	if obs.Severity != domain.SeverityHeavy {
		t.Errorf("expected heavy severity for 1200s over 900s baseline, got %s", obs.Severity)
	}
	if obs.Timestamp.Before(before) || obs.Timestamp.After(time.Now().UTC()) {
		t.Errorf("timestamp not stamped at fetch time: %v", obs.Timestamp)
	}
}

func TestTrafficFetcher_Fetch_NegativeRatioIsNormal(t *testing.T) {
	provider := &stubProvider{estimate: &ports.RouteEstimate{Duration: 900, DurationInTraffic: 600}}
	fetcher := NewTrafficFetcher(provider, zerolog.Nop())

	obs, err := fetcher.Fetch(context.Background(), fetchOrigin, fetchDestination)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if obs.Severity != domain.SeverityNormal {
		t.Errorf("lighter-than-usual traffic should classify normal, got %s", obs.Severity)
	}
}

func TestTrafficFetcher_Fetch_ZeroBaseline(t *testing.T) {
	provider := &stubProvider{estimate: &ports.RouteEstimate{Duration: 0, DurationInTraffic: 600}}
	fetcher := NewTrafficFetcher(provider, zerolog.Nop())

	obs, err := fetcher.Fetch(context.Background(), fetchOrigin, fetchDestination)
	if !errors.Is(err, domain.ErrZeroBaseline) {
		t.Fatalf("expected ErrZeroBaseline, got: %v", err)
	}
	if obs != nil {
		t.Errorf("expected no observation on zero baseline, got: %+v", obs)
	}
}

func TestTrafficFetcher_Fetch_ProviderErrorPassesThrough(t *testing.T) {
	provider := &stubProvider{err: domain.ErrProviderUnavailable}
	fetcher := NewTrafficFetcher(provider, zerolog.Nop())

	if _, err := fetcher.Fetch(context.Background(), fetchOrigin, fetchDestination); !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
	}
}

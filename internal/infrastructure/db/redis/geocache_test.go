package redis

import (
	"testing"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
)

func TestGeoCacheKeyNormalization(t *testing.T) {
	g := &GeoCache{}

	if got := g.key("  Grand Indonesia "); got != "geocode:grand indonesia" {
		t.Errorf("unexpected key: %q", got)
	}
	if g.key("Monas") != g.key("monas") {
		t.Error("keys must be case-insensitive")
	}
}

func TestParseCoordinatesRoundTrip(t *testing.T) {
	want := domain.Coordinates{Lat: -6.2088, Lng: 106.8456}

	got, ok := parseCoordinates(want.String())
	if !ok {
		t.Fatalf("failed to parse %q", want.String())
	}
	if got != want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestParseCoordinatesRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "1", "a,b", "1,2,3extra,", "not-a-number,106.8"} {
		if _, ok := parseCoordinates(s); ok {
			t.Errorf("expected parse failure for %q", s)
		}
	}
}

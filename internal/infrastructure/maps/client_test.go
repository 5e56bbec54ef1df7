package maps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestClient(srv *httptest.Server) *Client {
	return NewClient("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

const directionsOK = `{
  "status": "OK",
  "routes": [
    {
      "legs": [
        {
          "duration": {"value": 900, "text": "15 mins"},
          "duration_in_traffic": {"value": 1200, "text": "20 mins"}
        }
      ]
    }
  ]
}`

const geocodeOK = `{
  "status": "OK",
  "results": [
    {
      "geometry": {
        "location": {"lat": -6.2446, "lng": 106.7996}
      }
    }
  ]
}`

// ---------------------------------------------------------------------------
// Directions
// ---------------------------------------------------------------------------

func TestClient_Directions_ParsesFirstLeg(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/directions/json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotQuery = map[string]string{
			"origin":         r.URL.Query().Get("origin"),
			"destination":    r.URL.Query().Get("destination"),
			"departure_time": r.URL.Query().Get("departure_time"),
			"traffic_model":  r.URL.Query().Get("traffic_model"),
			"key":            r.URL.Query().Get("key"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(directionsOK))
	}))
	defer srv.Close()

	client := newTestClient(srv)
	estimate, err := client.Directions(context.Background(),
		domain.Coordinates{Lat: -6.2088, Lng: 106.8456},
		domain.Coordinates{Lat: -6.2297, Lng: 106.8269},
	)
	if err != nil {
		t.Fatalf("Directions returned error: %v", err)
	}

	if estimate.Duration != 900 {
		t.Errorf("expected duration 900, got %d", estimate.Duration)
	}
	if estimate.DurationInTraffic != 1200 {
		t.Errorf("expected duration_in_traffic 1200, got %d", estimate.DurationInTraffic)
	}

	if gotQuery["origin"] != "-6.2088,106.8456" {
		t.Errorf("unexpected origin param %q", gotQuery["origin"])
	}
	if gotQuery["destination"] != "-6.2297,106.8269" {
		t.Errorf("unexpected destination param %q", gotQuery["destination"])
	}
	if gotQuery["departure_time"] != "now" {
		t.Errorf("expected departure_time=now, got %q", gotQuery["departure_time"])
	}
	if gotQuery["traffic_model"] != "best_guess" {
		t.Errorf("expected traffic_model=best_guess, got %q", gotQuery["traffic_model"])
	}
	if gotQuery["key"] != "test-key" {
		t.Errorf("expected key=test-key, got %q", gotQuery["key"])
	}
}

func TestClient_Directions_NoRouteStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "routes": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Directions(context.Background(), domain.Coordinates{Lat: 1, Lng: 2}, domain.Coordinates{Lat: 3, Lng: 4})
	if !errors.Is(err, domain.ErrNoRoute) {
		t.Fatalf("expected ErrNoRoute, got %v", err)
	}
}

func TestClient_Directions_MissingTrafficDuration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "routes": [{"legs": [{"duration": {"value": 900}}]}]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Directions(context.Background(), domain.Coordinates{Lat: 1, Lng: 2}, domain.Coordinates{Lat: 3, Lng: 4})
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestClient_Directions_EmptyLegs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "routes": [{"legs": []}]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Directions(context.Background(), domain.Coordinates{Lat: 1, Lng: 2}, domain.Coordinates{Lat: 3, Lng: 4})
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestClient_Directions_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Directions(context.Background(), domain.Coordinates{Lat: 1, Lng: 2}, domain.Coordinates{Lat: 3, Lng: 4})
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestClient_Directions_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.Directions(context.Background(), domain.Coordinates{Lat: 1, Lng: 2}, domain.Coordinates{Lat: 3, Lng: 4})
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestClient_Directions_GarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "routes": "not-an-array"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Directions(context.Background(), domain.Coordinates{Lat: 1, Lng: 2}, domain.Coordinates{Lat: 3, Lng: 4})
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Geocode
// ---------------------------------------------------------------------------

func TestClient_Geocode_QualifiesAddress(t *testing.T) {
	var gotAddress string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/geocode/json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotAddress = r.URL.Query().Get("address")
		w.Write([]byte(geocodeOK))
	}))
	defer srv.Close()

	coords, err := newTestClient(srv).Geocode(context.Background(), "Blok M")
	if err != nil {
		t.Fatalf("Geocode returned error: %v", err)
	}

	if gotAddress != "Blok M, Jakarta, Indonesia" {
		t.Errorf("expected address qualified with city and country, got %q", gotAddress)
	}
	if coords.Lat != -6.2446 || coords.Lng != 106.7996 {
		t.Errorf("unexpected coordinates %+v", coords)
	}
}

func TestClient_Geocode_CustomRegion(t *testing.T) {
	var gotAddress string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAddress = r.URL.Query().Get("address")
		w.Write([]byte(geocodeOK))
	}))
	defer srv.Close()

	client := NewClient("test-key",
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithRegion("Bandung", "Indonesia"),
	)
	if _, err := client.Geocode(context.Background(), "Alun Alun"); err != nil {
		t.Fatalf("Geocode returned error: %v", err)
	}

	if gotAddress != "Alun Alun, Bandung, Indonesia" {
		t.Errorf("unexpected address %q", gotAddress)
	}
}

func TestClient_Geocode_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Geocode(context.Background(), "Nowhere At All")
	if !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestClient_Geocode_DeniedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "results": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Geocode(context.Background(), "Blok M")
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

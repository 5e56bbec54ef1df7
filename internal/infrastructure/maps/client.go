// Package maps implements the directions and geocoding ports on top of the
// Google Maps web service API.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
	"github.com/macetwatch/traffic-monitor/internal/core/ports"
)

const (
	defaultBaseURL = "https://maps.googleapis.com"
	defaultTimeout = 10 * time.Second

	statusOK         = "OK"
	statusZeroResult = "ZERO_RESULTS"
)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the API endpoint (useful for testing).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithRegion sets the city and country appended to free-form geocode queries.
func WithRegion(city, country string) ClientOption {
	return func(c *Client) {
		c.city = city
		c.country = country
	}
}

// Client talks to the Google Maps directions and geocoding endpoints. It
// satisfies both ports.DirectionsProvider and ports.Geocoder. Requests are
// made once per call; callers decide whether a failed estimate is retried on
// a later sweep.
type Client struct {
	apiKey     string
	baseURL    string
	city       string
	country    string
	httpClient *http.Client
}

// NewClient creates a maps API client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		city:    "Jakarta",
		country: "Indonesia",
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// directionsResponse mirrors the JSON shape returned by /maps/api/directions/json.
type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
			DurationInTraffic struct {
				Value int `json:"value"`
			} `json:"duration_in_traffic"`
		} `json:"legs"`
	} `json:"routes"`
}

// Directions fetches a live route estimate between two points. The estimate
// comes from the first leg of the first route, with departure time pinned to
// now so the provider returns a traffic-aware duration.
func (c *Client) Directions(ctx context.Context, origin, destination domain.Coordinates) (*ports.RouteEstimate, error) {
	query := url.Values{}
	query.Set("origin", origin.String())
	query.Set("destination", destination.String())
	query.Set("departure_time", "now")
	query.Set("traffic_model", "best_guess")
	query.Set("key", c.apiKey)

	var payload directionsResponse
	if err := c.get(ctx, "/maps/api/directions/json", query, &payload); err != nil {
		return nil, err
	}

	if payload.Status != statusOK || len(payload.Routes) == 0 {
		return nil, fmt.Errorf("directions status %q: %w", payload.Status, domain.ErrNoRoute)
	}

	route := payload.Routes[0]
	if len(route.Legs) == 0 {
		return nil, fmt.Errorf("directions route has no legs: %w", domain.ErrMalformedResponse)
	}

	leg := route.Legs[0]
	estimate := &ports.RouteEstimate{
		Duration:          leg.Duration.Value,
		DurationInTraffic: leg.DurationInTraffic.Value,
	}
	if estimate.DurationInTraffic == 0 {
		// The field is only present on departure_time requests; its absence
		// means the response cannot be classified.
		return nil, fmt.Errorf("directions leg missing duration_in_traffic: %w", domain.ErrMalformedResponse)
	}

	return estimate, nil
}

// geocodeResponse mirrors the JSON shape returned by /maps/api/geocode/json.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-form address to coordinates. The query is
// qualified with the configured city and country so that short names like
// "Blok M" resolve inside the monitored area.
func (c *Client) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	query := url.Values{}
	query.Set("address", fmt.Sprintf("%s, %s, %s", address, c.city, c.country))
	query.Set("key", c.apiKey)

	var payload geocodeResponse
	if err := c.get(ctx, "/maps/api/geocode/json", query, &payload); err != nil {
		return domain.Coordinates{}, err
	}

	if payload.Status == statusZeroResult || (payload.Status == statusOK && len(payload.Results) == 0) {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, domain.ErrAddressNotFound)
	}
	if payload.Status != statusOK {
		return domain.Coordinates{}, fmt.Errorf("geocode status %q: %w", payload.Status, domain.ErrProviderUnavailable)
	}

	loc := payload.Results[0].Geometry.Location
	return domain.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("maps: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("maps: %v: %w", err, domain.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("maps: unexpected status %d: %w", resp.StatusCode, domain.ErrProviderUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("maps: decoding response: %v: %w", err, domain.ErrMalformedResponse)
	}

	return nil
}

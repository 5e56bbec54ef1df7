package redis

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/macetwatch/traffic-monitor/internal/api/metrics"
	"github.com/macetwatch/traffic-monitor/internal/core/domain"
	"github.com/macetwatch/traffic-monitor/internal/core/ports"
)

const geocodeTTL = 24 * time.Hour

// GeoCache caches geocoding answers in Redis in front of a slower Geocoder.
// Cache failures are logged and fall through to the wrapped geocoder: a
// broken cache costs latency, never correctness.
// Key format: geocode:<normalized address>
type GeoCache struct {
	client *redis.Client
	next   ports.Geocoder
	log    zerolog.Logger
}

// NewGeoCache wraps a geocoder with a Redis lookaside cache.
func NewGeoCache(client *redis.Client, next ports.Geocoder, log zerolog.Logger) *GeoCache {
	return &GeoCache{client: client, next: next, log: log}
}

func (g *GeoCache) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	key := g.key(address)

	cached, err := g.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if coords, ok := parseCoordinates(cached); ok {
			metrics.GeocodeCacheTotal.WithLabelValues("hit").Inc()
			return coords, nil
		}
		metrics.GeocodeCacheTotal.WithLabelValues("error").Inc()
		g.log.Warn().Str("address", address).Str("cached", cached).Msg("unparsable geocode cache entry, querying provider")
	case errors.Is(err, redis.Nil):
		metrics.GeocodeCacheTotal.WithLabelValues("miss").Inc()
	default:
		metrics.GeocodeCacheTotal.WithLabelValues("error").Inc()
		g.log.Warn().Err(err).Str("address", address).Msg("geocode cache read failed, querying provider")
	}

	coords, err := g.next.Geocode(ctx, address)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if err := g.client.Set(ctx, key, coords.String(), geocodeTTL).Err(); err != nil {
		g.log.Warn().Err(err).Str("address", address).Msg("geocode cache write failed")
	}

	return coords, nil
}

func (g *GeoCache) key(address string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(address))
}

// parseCoordinates reverses domain.Coordinates.String.
func parseCoordinates(s string) (domain.Coordinates, bool) {
	lat, lng, ok := strings.Cut(s, ",")
	if !ok {
		return domain.Coordinates{}, false
	}

	latF, latErr := strconv.ParseFloat(lat, 64)
	lngF, lngErr := strconv.ParseFloat(lng, 64)
	if latErr != nil || lngErr != nil {
		return domain.Coordinates{}, false
	}

	return domain.Coordinates{Lat: latF, Lng: lngF}, true
}

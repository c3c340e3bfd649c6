// Package geo provides the distance resolver boundary: free-text address
// in, resolved display name and road-distance estimate out.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/guttosm/catering-service/internal/circuitbreaker"
)

// ErrNoMatch is returned when the geocoding service finds no result for
// the query. It is non-fatal: the caller leaves the distance unresolved.
var ErrNoMatch = errors.New("no match for address")

// DefaultRoutingOverhead inflates great-circle distance to approximate
// road distance. Reference value: +25%.
const DefaultRoutingOverhead = 1.25

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64
	Lng float64
}

// Resolution is the resolver output contract consumed by the ordering core.
type Resolution struct {
	DisplayName string  `json:"resolved_display_name"`
	DistanceKm  float64 `json:"distance_km"`
}

// Resolver resolves a free-text address to a display name and a distance
// from the fixed service origin.
type Resolver interface {
	Resolve(ctx context.Context, query string) (*Resolution, error)
}

// Haversine returns the great-circle distance between two points in km.
func Haversine(a, b LatLng) float64 {
	const earthRadiusKm = 6371.0

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// RoadDistanceKm estimates road distance from the origin: great-circle
// distance inflated by the routing overhead, rounded to the nearest km.
func RoadDistanceKm(origin, point LatLng, overhead float64) float64 {
	if overhead <= 0 {
		overhead = DefaultRoutingOverhead
	}
	return math.Round(Haversine(origin, point) * overhead)
}

// Config holds geocoding client configuration.
type Config struct {
	// BaseURL is the geocoding endpoint (Nominatim-compatible /search).
	BaseURL string
	// Origin is the fixed service origin distances are measured from.
	Origin LatLng
	// RoutingOverhead inflates great-circle distance; defaults to
	// DefaultRoutingOverhead when zero.
	RoutingOverhead float64
	// Timeout bounds each HTTP call.
	Timeout time.Duration
}

// GeocodeResolver resolves addresses against a Nominatim-compatible
// geocoding endpoint, protected by a circuit breaker.
type GeocodeResolver struct {
	cfg     Config
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewGeocodeResolver creates a resolver for the given configuration.
func NewGeocodeResolver(cfg Config, breaker *circuitbreaker.CircuitBreaker) *GeocodeResolver {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GeocodeResolver{
		cfg:     cfg,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
	}
}

// geocodeResult is the subset of the Nominatim response we consume.
type geocodeResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Resolve geocodes the query and converts the best match into the resolver
// output contract. Returns ErrNoMatch when the service has no result.
func (r *GeocodeResolver) Resolve(ctx context.Context, query string) (*Resolution, error) {
	var resolution *Resolution

	call := func() error {
		res, err := r.geocode(ctx, query)
		if err != nil {
			return err
		}
		resolution = res
		return nil
	}

	var err error
	if r.breaker != nil {
		err = r.breaker.Execute(ctx, call)
	} else {
		err = call()
	}
	if err != nil {
		return nil, err
	}
	return resolution, nil
}

func (r *GeocodeResolver) geocode(ctx context.Context, query string) (*Resolution, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", r.cfg.BaseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode request: unexpected status %d", resp.StatusCode)
	}

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoMatch
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse geocode latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse geocode longitude: %w", err)
	}

	return &Resolution{
		DisplayName: results[0].DisplayName,
		DistanceKm:  RoadDistanceKm(r.cfg.Origin, LatLng{Lat: lat, Lng: lng}, r.cfg.RoutingOverhead),
	}, nil
}

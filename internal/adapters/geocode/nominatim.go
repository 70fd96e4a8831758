package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"logistics-dashboard-service/internal/domain"
	"logistics-dashboard-service/internal/platform/obs"
	"logistics-dashboard-service/internal/ports"
)

// NominatimGeocoder implements Geocoder against a Nominatim-style /search
// endpoint.
//
// It coordinates:
//   - Query normalization
//   - Persistent geocode caching (cache hits skip the network entirely)
//   - A fixed pre-request delay to stay under the public rate limit
//   - External API calls with retry/backoff
//
// The geocoder is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
	delay     time.Duration
	cache     ports.GeocodeCache
}

func NewNominatimGeocoder(
	baseURL string,
	userAgent string,
	delay time.Duration,
	cache ports.GeocodeCache,
) (*NominatimGeocoder, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("geocoder user agent is empty")
	}

	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}

	geocoder := &NominatimGeocoder{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		delay:     delay,
		cache:     cache,
	}

	return geocoder, nil
}

// searchResult mirrors one element of the Nominatim /search response.
// Coordinates arrive as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *NominatimGeocoder) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Geocode resolves a free-text place name to its best match.
func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (_ domain.Place, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	norm := g.normalize(query)
	if norm == "" {
		return domain.Place{}, errors.New("geocode: query must be non-empty")
	}

	// Check the persistent cache before issuing external API calls.
	if g.cache != nil {
		place, ok, err := g.cache.Get(ctx, norm)
		if err != nil {
			return domain.Place{}, fmt.Errorf("geocode cache read: %w", err)
		}
		if ok {
			return place, nil
		}
	}

	if err := g.wait(ctx); err != nil {
		return domain.Place{}, err
	}

	endpoint := g.baseURL + "/search"

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("q", norm)
		q.Set("format", "json")
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Place{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Place{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded) == 0 {
		return domain.Place{}, fmt.Errorf("geocode %q: %w", norm, ports.ErrNoMatch)
	}

	place, err := toPlace(decoded[0])
	if err != nil {
		return domain.Place{}, fmt.Errorf("geocode %q: %w", norm, err)
	}

	if g.cache != nil {
		if err := g.cache.Put(ctx, norm, place); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return place, nil
}

// wait blocks for the configured rate-limit delay, or returns early when the
// context is cancelled.
func (g *NominatimGeocoder) wait(ctx context.Context) error {
	if g.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(g.delay)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func toPlace(r searchResult) (domain.Place, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return domain.Place{}, fmt.Errorf("parse latitude %q: %w", r.Lat, err)
	}

	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return domain.Place{}, fmt.Errorf("parse longitude %q: %w", r.Lon, err)
	}

	coords := domain.Coordinates{Lat: lat, Lon: lon}
	if !coords.Valid() {
		return domain.Place{}, fmt.Errorf("coordinates out of range: lat=%v lon=%v", lat, lon)
	}

	return domain.Place{Name: r.DisplayName, Coords: coords}, nil
}

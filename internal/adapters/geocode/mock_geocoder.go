package geocode

import (
	"context"
	"fmt"
	"strings"

	"logistics-dashboard-service/internal/domain"
	"logistics-dashboard-service/internal/ports"
)

// MockGeocoder resolves queries from a fixed table. Unknown queries behave
// like an empty upstream result.
type MockGeocoder struct {
	m map[string]domain.Place
}

func NewMockGeocoder(places map[string]domain.Place) *MockGeocoder {
	m := make(map[string]domain.Place, len(places))
	for q, p := range places {
		m[strings.TrimSpace(q)] = p
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, query string) (domain.Place, error) {
	place, ok := g.m[strings.TrimSpace(query)]
	if !ok {
		return domain.Place{}, fmt.Errorf("geocode %q: %w", query, ports.ErrNoMatch)
	}

	return place, nil
}

package ports

import (
	"context"
	"errors"

	"logistics-dashboard-service/internal/domain"
)

// ErrNoMatch is returned when the geocoding endpoint yields no result for a
// query. Callers that do not care about the distinction may treat it like any
// other lookup failure.
var ErrNoMatch = errors.New("no geocoding match")

// Contract for resolving a free-text place name into a named coordinate pair.
type Geocoder interface {
	// Return the best match for the query, or an error wrapping ErrNoMatch
	// when the endpoint has no result.
	Geocode(ctx context.Context, query string) (domain.Place, error)
}

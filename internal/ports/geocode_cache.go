package ports

import (
	"context"

	"logistics-dashboard-service/internal/domain"
)

// GeocodeCache is a persistent query -> place cache consulted before the
// external geocoding endpoint. Query keys are expected to be consistent
// (e.g., normalized) by the caller.
type GeocodeCache interface {
	// Get returns the cached place for the query and whether it was present.
	Get(ctx context.Context, query string) (domain.Place, bool, error)

	// Put stores a query -> place mapping, replacing any existing entry.
	Put(ctx context.Context, query string, place domain.Place) error
}

package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"logistics-dashboard-service/internal/domain"
	"logistics-dashboard-service/internal/platform/obs"
)

// SQLite backed cache mapping geocoding queries to resolved places.
// Query keys are expected to be consistent (e.g., normalized) by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Fetch the cached place for the given query.
func (s *SqliteGeocodeCache) Get(ctx context.Context, query string) (_ domain.Place, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Place{}, false, errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Place{}, false, errors.New("get geocode cache: query must not be empty")
	}

	q := `
	SELECT
		name,
		lat,
		lon
	FROM geocode_cache
	WHERE query = ?;
	`

	var place domain.Place
	err = s.DB.QueryRowContext(ctx, q, query).Scan(&place.Name, &place.Coords.Lat, &place.Coords.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Place{}, false, nil
	}
	if err != nil {
		return domain.Place{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return place, true, nil
}

// Store a query -> place mapping in the cache.
func (s *SqliteGeocodeCache) Put(ctx context.Context, query string, place domain.Place) (err error) {
	defer obs.Time(ctx, "geocode.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (
		query,
		name,
		lat,
		lon
	)
	VALUES (?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, query, place.Name, place.Coords.Lat, place.Coords.Lon); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}

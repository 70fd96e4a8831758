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

// SQLGeocodeCache is a Postgres-backed cache mapping geocoding queries to
// resolved places.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// InitSchema creates the geocode cache table if it does not exist.
func (s *SQLGeocodeCache) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		query TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`

	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init geocode cache schema: %w", err)
	}

	return nil
}

// Fetch the cached place for the given query.
func (s *SQLGeocodeCache) Get(ctx context.Context, query string) (_ domain.Place, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Place{}, false, errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Place{}, false, errors.New("get geocode cache: query must not be empty")
	}

	q := `
	SELECT name, lat, lon
	FROM geocode_cache
	WHERE query = $1;
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
func (s *SQLGeocodeCache) Put(ctx context.Context, query string, place domain.Place) (err error) {
	defer obs.Time(ctx, "geocode.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	q := `
	INSERT INTO geocode_cache (query, name, lat, lon)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (query) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`

	if _, err := s.DB.ExecContext(ctx, q, query, place.Name, place.Coords.Lat, place.Coords.Lon); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}

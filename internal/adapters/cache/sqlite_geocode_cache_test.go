package cache

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"logistics-dashboard-service/internal/domain"
)

func newSqliteCache(t *testing.T) *SqliteGeocodeCache {
	t.Helper()

	// File-backed database: with :memory: every pooled connection would get
	// its own empty database.
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	schema := `
	CREATE TABLE geocode_cache (
		query TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	return NewSqliteGeocodeCache(db)
}

func TestSqliteGeocodeCacheRoundTrip(t *testing.T) {
	cache := newSqliteCache(t)
	ctx := context.Background()

	place := domain.Place{
		Name:   "Hamburg, Deutschland",
		Coords: domain.Coordinates{Lat: 53.550341, Lon: 10.000654},
	}

	if err := cache.Put(ctx, "Hamburg", place); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := cache.Get(ctx, "Hamburg")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("entry missing after put")
	}
	if got != place {
		t.Fatalf("got %+v, want %+v", got, place)
	}
}

func TestSqliteGeocodeCacheMiss(t *testing.T) {
	cache := newSqliteCache(t)

	_, ok, err := cache.Get(context.Background(), "never stored")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("unexpected hit for missing entry")
	}
}

func TestSqliteGeocodeCacheReplacesEntry(t *testing.T) {
	cache := newSqliteCache(t)
	ctx := context.Background()

	first := domain.Place{Name: "Springfield, Illinois", Coords: domain.Coordinates{Lat: 39.7990175, Lon: -89.6439575}}
	second := domain.Place{Name: "Springfield, Missouri", Coords: domain.Coordinates{Lat: 37.2166779, Lon: -93.2920373}}

	if err := cache.Put(ctx, "Springfield", first); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := cache.Put(ctx, "Springfield", second); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, ok, err := cache.Get(ctx, "Springfield")
	if err != nil || !ok {
		t.Fatalf("get after replace (ok=%v err=%v)", ok, err)
	}
	if got != second {
		t.Fatalf("got %+v, want replacement %+v", got, second)
	}
}

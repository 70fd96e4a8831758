package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"logistics-dashboard-service/internal/adapters/cache"
	"logistics-dashboard-service/internal/adapters/geocode"
	"logistics-dashboard-service/internal/adapters/repositories"
	"logistics-dashboard-service/internal/api"
	"logistics-dashboard-service/internal/platform/db"
	"logistics-dashboard-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Nominatim, optional Postgres/Redis
// cache backends) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	seedPath := getEnv("SEED_PATH", "data/seeds/dashboard.json")
	port := getEnv("PORT", "8080")
	geocodeURL := getEnv("GEOCODE_URL", "https://nominatim.openstreetmap.org")
	userAgent := getEnv("GEOCODE_USER_AGENT", "logistics-dashboard-service/1.0")
	delay := getEnvDuration("GEOCODE_DELAY_MS", 1100*time.Millisecond)

	sqliteDB, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	// Initialize schema and seed dashboard data on startup for local runs.
	if err := initAndSeed(sqliteDB, seedPath); err != nil {
		log.Fatal(err)
	}

	geocodeCache, err := selectGeocodeCache(sqliteDB)
	if err != nil {
		log.Fatal(err)
	}

	geocoder, err := geocode.NewNominatimGeocoder(geocodeURL, userAgent, delay, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteDashboardRepository(sqliteDB)
	router := api.NewRouter(repo, geocoder)

	// Write timeout is tuned for cold-cache planning (two rate-limited
	// geocoding lookups with retries).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// selectGeocodeCache picks the cache backend: Redis when REDIS_ADDR is set,
// Postgres when DATABASE_URL is set, the local SQLite database otherwise.
func selectGeocodeCache(sqliteDB *sql.DB) (ports.GeocodeCache, error) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("verify redis connection to %q: %w", addr, err)
		}
		log.Printf("geocode cache backend=redis addr=%s", addr)
		return cache.NewRedisGeocodeCache(rdb, 24*time.Hour), nil
	}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		pg, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, err
		}
		pgCache := cache.NewSQLGeocodeCache(pg)
		if err := pgCache.InitSchema(context.Background()); err != nil {
			return nil, err
		}
		log.Println("geocode cache backend=postgres")
		return pgCache, nil
	}

	log.Println("geocode cache backend=sqlite")
	return cache.NewSqliteGeocodeCache(sqliteDB), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		log.Printf("invalid %s=%q, using default", key, v)
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

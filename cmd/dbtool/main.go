package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"logistics-dashboard-service/internal/adapters/cache"
	"logistics-dashboard-service/internal/adapters/repositories"
	"logistics-dashboard-service/internal/platform/db"
)

// dbtool initializes and seeds the local SQLite database, and can manage the
// Postgres geocode cache when DATABASE_URL is set.
func main() {
	flushCache := flag.Bool("flush-geocode-cache", false, "delete all geocode cache entries")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	seedPath := getEnv("SEED_PATH", "data/seeds/dashboard.json")

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("open sqlite database %q: %v", dbPath, err)
	}
	defer sqliteDB.Close()

	if err := initAndSeed(sqliteDB, seedPath); err != nil {
		log.Fatal(err)
	}

	if *flushCache {
		if err := flushGeocodeCache(sqliteDB); err != nil {
			log.Fatal(err)
		}
	}
}

func initAndSeed(sqliteDB *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(sqliteDB); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(sqliteDB, seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}

// flushGeocodeCache clears cached lookups in SQLite, and in Postgres too when
// DATABASE_URL is configured.
func flushGeocodeCache(sqliteDB *sql.DB) error {
	log.Println("Flushing geocode cache...")
	if _, err := sqliteDB.Exec(`DELETE FROM geocode_cache;`); err != nil {
		return fmt.Errorf("flush sqlite geocode cache: %w", err)
	}

	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return err
		}
		defer pg.Close()

		pgCache := cache.NewSQLGeocodeCache(pg)
		if err := pgCache.InitSchema(context.Background()); err != nil {
			return err
		}
		if _, err := pg.Exec(`DELETE FROM geocode_cache;`); err != nil {
			return fmt.Errorf("flush postgres geocode cache: %w", err)
		}
	}

	log.Println("Geocode cache flushed.")
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"logistics-dashboard-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createShipmentsQuery := `
	CREATE TABLE IF NOT EXISTS shipments (
		shipment_id INTEGER PRIMARY KEY,
		reference TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		mode TEXT NOT NULL,
		status TEXT NOT NULL,
		weight_kg REAL NOT NULL
	);
	`

	createLanesQuery := `
	CREATE TABLE IF NOT EXISTS lanes (
		lane_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		origin_name TEXT NOT NULL,
		origin_lat REAL NOT NULL,
		origin_lon REAL NOT NULL,
		destination_name TEXT NOT NULL,
		destination_lat REAL NOT NULL,
		destination_lon REAL NOT NULL
	);
	`

	createWeatherQuery := `
	CREATE TABLE IF NOT EXISTS weather (
		city TEXT PRIMARY KEY,
		condition TEXT NOT NULL,
		temp_c REAL NOT NULL,
		wind_kph REAL NOT NULL
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		query TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_shipments_status
	ON shipments(status);
	`

	statements := []string{
		createShipmentsQuery,
		createLanesQuery,
		createWeatherQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type ShipmentSeed struct {
	ShipmentID  int     `json:"shipment_id"`
	Reference   string  `json:"reference"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Mode        string  `json:"mode"`
	Status      string  `json:"status"`
	WeightKg    float64 `json:"weight_kg"`
}

type PlaceSeed struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type LaneSeed struct {
	LaneID      int       `json:"lane_id"`
	Name        string    `json:"name"`
	Origin      PlaceSeed `json:"origin"`
	Destination PlaceSeed `json:"destination"`
}

type WeatherSeed struct {
	City      string  `json:"city"`
	Condition string  `json:"condition"`
	TempC     float64 `json:"temp_c"`
	WindKph   float64 `json:"wind_kph"`
}

type DashboardSeed struct {
	Shipments []ShipmentSeed `json:"shipments"`
	Lanes     []LaneSeed     `json:"lanes"`
	Weather   []WeatherSeed  `json:"weather"`
}

// Populate the dashboard tables with data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed dashboard: read %q: %w", jsonPath, err)
	}

	var data DashboardSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed dashboard: parse json: %w", err)
	}

	if err := validateSeed(&data); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed dashboard: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	shipmentStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO shipments (
		shipment_id,
		reference,
		origin,
		destination,
		mode,
		status,
		weight_kg
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed dashboard: prepare shipment insert: %w", err)
	}
	defer shipmentStmt.Close()

	for _, sh := range data.Shipments {
		if _, err := shipmentStmt.Exec(
			sh.ShipmentID, sh.Reference, sh.Origin, sh.Destination, sh.Mode, sh.Status, sh.WeightKg,
		); err != nil {
			return fmt.Errorf("seed dashboard: insert shipment_id=%d: %w", sh.ShipmentID, err)
		}
	}

	laneStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO lanes (
		lane_id,
		name,
		origin_name,
		origin_lat,
		origin_lon,
		destination_name,
		destination_lat,
		destination_lon
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed dashboard: prepare lane insert: %w", err)
	}
	defer laneStmt.Close()

	for _, l := range data.Lanes {
		if _, err := laneStmt.Exec(
			l.LaneID, l.Name,
			l.Origin.Name, l.Origin.Lat, l.Origin.Lon,
			l.Destination.Name, l.Destination.Lat, l.Destination.Lon,
		); err != nil {
			return fmt.Errorf("seed dashboard: insert lane_id=%d: %w", l.LaneID, err)
		}
	}

	weatherStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO weather (
		city,
		condition,
		temp_c,
		wind_kph
	)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed dashboard: prepare weather insert: %w", err)
	}
	defer weatherStmt.Close()

	for _, w := range data.Weather {
		if _, err := weatherStmt.Exec(w.City, w.Condition, w.TempC, w.WindKph); err != nil {
			return fmt.Errorf("seed dashboard: insert weather city=%q: %w", w.City, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed dashboard: commit tx: %w", err)
	}

	return nil
}

func validateSeed(data *DashboardSeed) error {
	validModes := map[string]struct{}{
		string(domain.ModeLand):    {},
		string(domain.ModeSeaLand): {},
		string(domain.ModeAir):     {},
	}
	validStatuses := map[string]struct{}{
		domain.StatusInTransit: {},
		domain.StatusDelivered: {},
		domain.StatusDelayed:   {},
	}

	for i, sh := range data.Shipments {
		if sh.ShipmentID <= 0 {
			return fmt.Errorf("seed dashboard: invalid shipment_id at index %d: %d", i, sh.ShipmentID)
		}
		if strings.TrimSpace(sh.Reference) == "" {
			return fmt.Errorf("seed dashboard: shipment at index %d: reference cannot be empty", i)
		}
		if strings.TrimSpace(sh.Origin) == "" || strings.TrimSpace(sh.Destination) == "" {
			return fmt.Errorf("seed dashboard: shipment at index %d: origin/destination cannot be empty", i)
		}
		if _, ok := validModes[sh.Mode]; !ok {
			return fmt.Errorf("seed dashboard: shipment at index %d: unknown mode %q", i, sh.Mode)
		}
		if _, ok := validStatuses[sh.Status]; !ok {
			return fmt.Errorf("seed dashboard: shipment at index %d: unknown status %q", i, sh.Status)
		}
	}

	for i, l := range data.Lanes {
		if l.LaneID <= 0 {
			return fmt.Errorf("seed dashboard: invalid lane_id at index %d: %d", i, l.LaneID)
		}
		if strings.TrimSpace(l.Name) == "" {
			return fmt.Errorf("seed dashboard: lane at index %d: name cannot be empty", i)
		}
		origin := domain.Coordinates{Lat: l.Origin.Lat, Lon: l.Origin.Lon}
		dest := domain.Coordinates{Lat: l.Destination.Lat, Lon: l.Destination.Lon}
		if !origin.Valid() || !dest.Valid() {
			return fmt.Errorf("seed dashboard: lane at index %d: coordinates out of range", i)
		}
	}

	for i, w := range data.Weather {
		if strings.TrimSpace(w.City) == "" {
			return fmt.Errorf("seed dashboard: weather at index %d: city cannot be empty", i)
		}
	}

	return nil
}

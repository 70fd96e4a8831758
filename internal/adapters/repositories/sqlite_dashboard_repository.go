package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"logistics-dashboard-service/internal/domain"
)

// SQLite-backed implementation of the DashboardRepository port.
type SqliteDashboardRepository struct{ DB *sql.DB }

func NewSqliteDashboardRepository(db *sql.DB) *SqliteDashboardRepository {
	return &SqliteDashboardRepository{DB: db}
}

// Return all shipment rows stored in the database.
func (s *SqliteDashboardRepository) ListShipments(ctx context.Context) ([]*domain.Shipment, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite dashboard repository: DB is nil")
	}

	query := `
	SELECT
		shipment_id,
		reference,
		origin,
		destination,
		mode,
		status,
		weight_kg
	FROM shipments
	ORDER BY shipment_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shipments: query shipments table: %w", err)
	}
	defer rows.Close()

	shipments := make([]*domain.Shipment, 0, 64)
	for rows.Next() {
		var sh domain.Shipment
		var mode string
		err := rows.Scan(&sh.ShipmentID, &sh.Reference, &sh.Origin, &sh.Destination, &mode, &sh.Status, &sh.WeightKg)
		if err != nil {
			return nil, fmt.Errorf("list shipments: scan row: %w", err)
		}
		sh.Mode = domain.TransportMode(mode)
		shipments = append(shipments, &sh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shipments: row iteration: %w", err)
	}

	return shipments, nil
}

// Return all named lanes stored in the database.
func (s *SqliteDashboardRepository) ListLanes(ctx context.Context) ([]*domain.Lane, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite dashboard repository: DB is nil")
	}

	query := `
	SELECT
		lane_id,
		name,
		origin_name,
		origin_lat,
		origin_lon,
		destination_name,
		destination_lat,
		destination_lon
	FROM lanes
	ORDER BY lane_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list lanes: query lanes table: %w", err)
	}
	defer rows.Close()

	lanes := make([]*domain.Lane, 0, 16)
	for rows.Next() {
		var l domain.Lane
		err := rows.Scan(
			&l.LaneID,
			&l.Name,
			&l.Origin.Name,
			&l.Origin.Coords.Lat,
			&l.Origin.Coords.Lon,
			&l.Destination.Name,
			&l.Destination.Coords.Lat,
			&l.Destination.Coords.Lon,
		)
		if err != nil {
			return nil, fmt.Errorf("list lanes: scan row: %w", err)
		}
		lanes = append(lanes, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lanes: row iteration: %w", err)
	}

	return lanes, nil
}

// Return all weather cards stored in the database.
func (s *SqliteDashboardRepository) ListWeather(ctx context.Context) ([]*domain.WeatherReport, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite dashboard repository: DB is nil")
	}

	query := `
	SELECT
		city,
		condition,
		temp_c,
		wind_kph
	FROM weather
	ORDER BY city;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list weather: query weather table: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.WeatherReport, 0, 16)
	for rows.Next() {
		var w domain.WeatherReport
		if err := rows.Scan(&w.City, &w.Condition, &w.TempC, &w.WindKph); err != nil {
			return nil, fmt.Errorf("list weather: scan row: %w", err)
		}
		reports = append(reports, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list weather: row iteration: %w", err)
	}

	return reports, nil
}

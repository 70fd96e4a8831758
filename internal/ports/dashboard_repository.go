package ports

import (
	"context"

	"logistics-dashboard-service/internal/domain"
)

// Port: a boundary for retrieving the seeded dashboard data sets.
type DashboardRepository interface {
	// Retrieve all shipment rows.
	ListShipments(ctx context.Context) ([]*domain.Shipment, error)

	// Retrieve all named lanes.
	ListLanes(ctx context.Context) ([]*domain.Lane, error)

	// Retrieve the weather cards.
	ListWeather(ctx context.Context) ([]*domain.WeatherReport, error)
}

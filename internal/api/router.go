package api

import (
	"net/http"

	"logistics-dashboard-service/internal/api/handlers"
	"logistics-dashboard-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.DashboardRepository, geocoder ports.Geocoder) http.Handler {
	mux := http.NewServeMux()

	shipmentHandler := &handlers.ShipmentHandler{Repo: repo}
	laneHandler := &handlers.LaneHandler{Repo: repo}
	weatherHandler := &handlers.WeatherHandler{Repo: repo}
	insightHandler := &handlers.InsightHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{Geocoder: geocoder}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/shipments", shipmentHandler.List)
	mux.HandleFunc("/lanes", laneHandler.List)
	mux.HandleFunc("/weather", weatherHandler.List)
	mux.HandleFunc("/insights", insightHandler.Get)
	mux.HandleFunc("/plans", planHandler.Plan)

	return loggingMiddleware(mux)
}

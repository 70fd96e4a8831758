package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"logistics-dashboard-service/internal/api/dto"
	"logistics-dashboard-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// displayMode maps a transport mode to its dashboard label. Air routes show
// as "air-land" once attached to a shipment record (the last leg is always
// ground transport); the base mode is used everywhere else.
func displayMode(m domain.TransportMode) string {
	if m == domain.ModeAir {
		return "air-land"
	}
	return string(m)
}

func toPlaceResponse(p domain.Place) dto.PlaceResponse {
	return dto.PlaceResponse{
		Name: p.Name,
		Lat:  p.Coords.Lat,
		Lon:  p.Coords.Lon,
	}
}

func toEstimateResponse(e domain.RouteEstimate) dto.EstimateResponse {
	return dto.EstimateResponse{
		DistanceKm:    e.DistanceKm,
		Mode:          string(e.Mode),
		CostUSD:       e.CostUSD,
		DurationHours: e.DurationHours,
	}
}

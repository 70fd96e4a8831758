package handlers

import (
	"log"
	"net/http"

	"logistics-dashboard-service/internal/api/dto"
	"logistics-dashboard-service/internal/ports"
	"logistics-dashboard-service/internal/services"
)

// LaneHandler serves the named corridors, each enriched with a freshly
// computed estimate at the default cargo weight.
type LaneHandler struct {
	Repo ports.DashboardRepository
}

func (h *LaneHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	lanes, err := h.Repo.ListLanes(r.Context())
	if err != nil {
		log.Printf("list lanes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLanesResponse{Lanes: make([]dto.LaneResponse, 0, len(lanes))}
	for _, l := range lanes {
		estimate := services.Estimate(l.Origin.Coords, l.Destination.Coords, services.DefaultWeightKg)

		res.Lanes = append(res.Lanes, dto.LaneResponse{
			LaneID:      l.LaneID,
			Name:        l.Name,
			Origin:      toPlaceResponse(l.Origin),
			Destination: toPlaceResponse(l.Destination),
			Estimate:    toEstimateResponse(estimate),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

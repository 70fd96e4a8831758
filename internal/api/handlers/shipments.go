package handlers

import (
	"log"
	"net/http"

	"logistics-dashboard-service/internal/api/dto"
	"logistics-dashboard-service/internal/ports"
)

// ShipmentHandler exposes read-only shipment retrieval endpoints.
type ShipmentHandler struct {
	Repo ports.DashboardRepository
}

func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	shipments, err := h.Repo.ListShipments(r.Context())
	if err != nil {
		log.Printf("list shipments failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListShipmentsResponse{
		Shipments: make([]dto.ShipmentResponse, 0, len(shipments)),
	}
	for _, s := range shipments {
		res.Shipments = append(res.Shipments, dto.ShipmentResponse{
			ShipmentID:  s.ShipmentID,
			Reference:   s.Reference,
			Origin:      s.Origin,
			Destination: s.Destination,
			Mode:        displayMode(s.Mode),
			Status:      s.Status,
			WeightKg:    s.WeightKg,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

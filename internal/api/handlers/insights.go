package handlers

import (
	"log"
	"net/http"

	"logistics-dashboard-service/internal/api/dto"
	"logistics-dashboard-service/internal/ports"
	"logistics-dashboard-service/internal/services"
)

// InsightHandler computes dashboard aggregates over the current shipment rows.
type InsightHandler struct {
	Repo ports.DashboardRepository
}

func (h *InsightHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	shipments, err := h.Repo.ListShipments(r.Context())
	if err != nil {
		log.Printf("list shipments for insights failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	report := services.ComputeInsights(shipments)

	shares := make(map[string]float64, len(report.ModeSharePct))
	for mode, pct := range report.ModeSharePct {
		shares[string(mode)] = pct
	}

	writeJSON(w, r, http.StatusOK, dto.InsightsResponse{
		TotalShipments: report.TotalShipments,
		InTransit:      report.InTransit,
		Delivered:      report.Delivered,
		Delayed:        report.Delayed,
		OnTimeRatePct:  report.OnTimeRatePct,
		ModeSharePct:   shares,
		TotalWeightKg:  report.TotalWeightKg,
	})
}

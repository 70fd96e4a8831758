package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"logistics-dashboard-service/internal/api/dto"
	"logistics-dashboard-service/internal/ports"
	"logistics-dashboard-service/internal/services"
)

// PlanHandler geocodes the two requested endpoints and returns the computed
// route estimate. Nothing is stored; every plan is computed fresh.
type PlanHandler struct {
	Geocoder ports.Geocoder
}

func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.Origin) == "" {
		writeError(w, r, http.StatusBadRequest, "origin is required")
		return
	}
	if strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return
	}

	svcReq := services.PlanRouteRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		WeightKg:    req.WeightKg,
	}

	plan, err := services.PlanRoute(r.Context(), svcReq, h.Geocoder)
	if err != nil {
		// No-match and upstream/network failures are deliberately not
		// distinguished at this boundary.
		log.Printf("plan route failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "could not resolve the requested places")
		return
	}

	res := dto.PlanResponse{
		Origin:      toPlaceResponse(plan.Origin),
		Destination: toPlaceResponse(plan.Destination),
		WeightKg:    plan.WeightKg,
		Estimate:    toEstimateResponse(plan.Estimate),
	}

	writeJSON(w, r, http.StatusOK, res)
}

package handlers

import (
	"log"
	"net/http"

	"logistics-dashboard-service/internal/api/dto"
	"logistics-dashboard-service/internal/ports"
)

// WeatherHandler serves the seeded weather cards.
type WeatherHandler struct {
	Repo ports.DashboardRepository
}

func (h *WeatherHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	reports, err := h.Repo.ListWeather(r.Context())
	if err != nil {
		log.Printf("list weather failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListWeatherResponse{Reports: make([]dto.WeatherResponse, 0, len(reports))}
	for _, rep := range reports {
		res.Reports = append(res.Reports, dto.WeatherResponse{
			City:      rep.City,
			Condition: rep.Condition,
			TempC:     rep.TempC,
			WindKph:   rep.WindKph,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

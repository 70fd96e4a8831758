package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"logistics-dashboard-service/internal/api/dto"
	"logistics-dashboard-service/internal/domain"
	"logistics-dashboard-service/internal/services"
)

func TestLaneHandlerEnrichesWithDefaultWeightEstimate(t *testing.T) {
	lanes := []*domain.Lane{
		{
			LaneID: 1,
			Name:   "Transatlantic West",
			Origin: domain.Place{
				Name:   "Rotterdam, Netherlands",
				Coords: domain.Coordinates{Lat: 51.9244424, Lon: 4.47775},
			},
			Destination: domain.Place{
				Name:   "New York, United States",
				Coords: domain.Coordinates{Lat: 40.7127281, Lon: -74.0060152},
			},
		},
		{
			LaneID: 2,
			Name:   "Northeast Corridor",
			Origin: domain.Place{
				Name:   "New York, United States",
				Coords: domain.Coordinates{Lat: 40.7127281, Lon: -74.0060152},
			},
			Destination: domain.Place{
				Name:   "Boston, Massachusetts",
				Coords: domain.Coordinates{Lat: 42.3554334, Lon: -71.0605518},
			},
		},
	}
	h := &LaneHandler{Repo: &stubDashboardRepo{lanes: lanes}}

	req := httptest.NewRequest(http.MethodGet, "/lanes", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.ListLanesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Lanes) != len(lanes) {
		t.Fatalf("got %d lanes, want %d", len(res.Lanes), len(lanes))
	}

	for i, lane := range lanes {
		want := services.Estimate(lane.Origin.Coords, lane.Destination.Coords, services.DefaultWeightKg)
		got := res.Lanes[i].Estimate

		if got.Mode != string(want.Mode) {
			t.Errorf("%s: mode = %q, want %q", lane.Name, got.Mode, want.Mode)
		}
		if got.DistanceKm != want.DistanceKm {
			t.Errorf("%s: distance = %v, want %v", lane.Name, got.DistanceKm, want.DistanceKm)
		}
		if got.CostUSD != want.CostUSD {
			t.Errorf("%s: cost = %d, want %d", lane.Name, got.CostUSD, want.CostUSD)
		}
		if got.DurationHours != want.DurationHours {
			t.Errorf("%s: duration = %d, want %d", lane.Name, got.DurationHours, want.DurationHours)
		}
	}

	// Rotterdam to New York is well past the 5000 km air threshold, New York
	// to Boston is a short ground haul.
	if res.Lanes[0].Estimate.Mode != "air" {
		t.Errorf("transatlantic mode = %q, want air", res.Lanes[0].Estimate.Mode)
	}
	if res.Lanes[1].Estimate.Mode != "land" {
		t.Errorf("northeast mode = %q, want land", res.Lanes[1].Estimate.Mode)
	}
}

func TestLaneHandlerMethodNotAllowed(t *testing.T) {
	h := &LaneHandler{Repo: &stubDashboardRepo{}}

	req := httptest.NewRequest(http.MethodDelete, "/lanes", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

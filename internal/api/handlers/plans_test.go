package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"logistics-dashboard-service/internal/adapters/geocode"
	"logistics-dashboard-service/internal/api/dto"
	"logistics-dashboard-service/internal/domain"
)

func newPlanHandler() *PlanHandler {
	geocoder := geocode.NewMockGeocoder(map[string]domain.Place{
		"New York": {
			Name:   "New York, United States",
			Coords: domain.Coordinates{Lat: 40.7128, Lon: -74.0060},
		},
		"Los Angeles": {
			Name:   "Los Angeles, California, United States",
			Coords: domain.Coordinates{Lat: 34.0522, Lon: -118.2437},
		},
	})
	return &PlanHandler{Geocoder: geocoder}
}

func postPlan(t *testing.T, h *PlanHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	return rec
}

func TestPlanHandlerComputesEstimate(t *testing.T) {
	h := newPlanHandler()

	rec := postPlan(t, h, `{"origin":"New York","destination":"Los Angeles","weight_kg":200}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.Origin.Name != "New York, United States" {
		t.Errorf("origin name = %q", res.Origin.Name)
	}
	if res.WeightKg != 200 {
		t.Errorf("weight = %v, want 200", res.WeightKg)
	}
	if res.Estimate.Mode != "sea-land" {
		t.Errorf("mode = %q, want sea-land", res.Estimate.Mode)
	}
	if res.Estimate.DistanceKm < 3900 || res.Estimate.DistanceKm > 3970 {
		t.Errorf("distance = %.1f, outside expected range", res.Estimate.DistanceKm)
	}
	if res.Estimate.CostUSD <= 0 || res.Estimate.DurationHours <= 0 {
		t.Errorf("estimate not populated: %+v", res.Estimate)
	}
}

func TestPlanHandlerValidation(t *testing.T) {
	h := newPlanHandler()

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"unknown field", `{"origin":"New York","destination":"Los Angeles","foo":1}`},
		{"missing origin", `{"destination":"Los Angeles"}`},
		{"missing destination", `{"origin":"New York"}`},
		{"trailing object", `{"origin":"New York","destination":"Los Angeles"}{}`},
	}

	for _, c := range cases {
		rec := postPlan(t, h, c.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", c.name, rec.Code)
		}
	}
}

func TestPlanHandlerUnresolvablePlace(t *testing.T) {
	h := newPlanHandler()

	rec := postPlan(t, h, `{"origin":"New York","destination":"Atlantis"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestPlanHandlerMethodNotAllowed(t *testing.T) {
	h := newPlanHandler()

	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	rec := httptest.NewRecorder()
	h.Plan(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

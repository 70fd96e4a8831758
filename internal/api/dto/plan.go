package dto

type PlanRequest struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"weight_kg"`
}

type PlaceResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type EstimateResponse struct {
	DistanceKm    float64 `json:"distance_km"`
	Mode          string  `json:"mode"`
	CostUSD       int     `json:"cost_usd"`
	DurationHours int     `json:"duration_hours"`
}

type PlanResponse struct {
	Origin      PlaceResponse    `json:"origin"`
	Destination PlaceResponse    `json:"destination"`
	WeightKg    float64          `json:"weight_kg"`
	Estimate    EstimateResponse `json:"estimate"`
}

package dto

type InsightsResponse struct {
	TotalShipments int                `json:"total_shipments"`
	InTransit      int                `json:"in_transit"`
	Delivered      int                `json:"delivered"`
	Delayed        int                `json:"delayed"`
	OnTimeRatePct  float64            `json:"on_time_rate_pct"`
	ModeSharePct   map[string]float64 `json:"mode_share_pct"`
	TotalWeightKg  float64            `json:"total_weight_kg"`
}

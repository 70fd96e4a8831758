package dto

type LaneResponse struct {
	LaneID      int              `json:"lane_id"`
	Name        string           `json:"name"`
	Origin      PlaceResponse    `json:"origin"`
	Destination PlaceResponse    `json:"destination"`
	Estimate    EstimateResponse `json:"estimate"`
}

type ListLanesResponse struct {
	Lanes []LaneResponse `json:"lanes"`
}

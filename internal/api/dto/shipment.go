package dto

type ShipmentResponse struct {
	ShipmentID  int     `json:"shipment_id"`
	Reference   string  `json:"reference"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Mode        string  `json:"mode"`
	Status      string  `json:"status"`
	WeightKg    float64 `json:"weight_kg"`
}

type ListShipmentsResponse struct {
	Shipments []ShipmentResponse `json:"shipments"`
}

package domain

// Shipment statuses as stored in the dashboard tables.
const (
	StatusInTransit = "in_transit"
	StatusDelivered = "delivered"
	StatusDelayed   = "delayed"
)

// Represents a single tracked consignment shown on the dashboard.
// Origin and destination are free-text place names; the mode is the
// classification the route was booked under.
type Shipment struct {
	ShipmentID  int
	Reference   string
	Origin      string
	Destination string
	Mode        TransportMode
	Status      string
	WeightKg    float64
}

package domain

// TransportMode classifies a route by how cargo moves along it. The estimator
// only ever produces one of the three base values; "air-land" exists purely as
// a display label once a route is attached to a shipment record.
type TransportMode string

const (
	ModeLand    TransportMode = "land"
	ModeSeaLand TransportMode = "sea-land"
	ModeAir     TransportMode = "air"
)

// RouteEstimate is an ephemeral derived value: great-circle distance between
// two points, the mode classified from that distance, and the cost/duration
// computed from the fixed rate tables. Recomputed on demand, never persisted.
type RouteEstimate struct {
	DistanceKm    float64
	Mode          TransportMode
	CostUSD       int
	DurationHours int
}

// RoutePlan is the full output of a planning request: both resolved endpoints,
// the cargo weight the estimate was computed with, and the estimate itself.
type RoutePlan struct {
	Origin      Place
	Destination Place
	WeightKg    float64
	Estimate    RouteEstimate
}

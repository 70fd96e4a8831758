package domain

// InsightReport aggregates the current shipment rows into the figures the
// dashboard renders. All fields are derived; the report is computed per
// request and discarded.
type InsightReport struct {
	TotalShipments int
	InTransit      int
	Delivered      int
	Delayed        int

	// Share of completed shipments that were not delayed, in percent.
	OnTimeRatePct float64

	// Percentage of shipments per transport mode. Keys are the base modes.
	ModeSharePct map[TransportMode]float64

	TotalWeightKg float64
}

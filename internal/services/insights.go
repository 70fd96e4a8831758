package services

import (
	"math"

	"logistics-dashboard-service/internal/domain"
)

// ComputeInsights aggregates shipment rows into the dashboard figures.
//
// The computation is deterministic and total: an empty slice produces a zero
// report with an empty (non-nil) mode-share map. Percentages are rounded to
// one decimal place.
func ComputeInsights(shipments []*domain.Shipment) domain.InsightReport {
	report := domain.InsightReport{
		ModeSharePct: make(map[domain.TransportMode]float64),
	}

	if len(shipments) == 0 {
		return report
	}

	modeCounts := make(map[domain.TransportMode]int)
	for _, s := range shipments {
		report.TotalShipments++
		report.TotalWeightKg += s.WeightKg
		modeCounts[s.Mode]++

		switch s.Status {
		case domain.StatusInTransit:
			report.InTransit++
		case domain.StatusDelivered:
			report.Delivered++
		case domain.StatusDelayed:
			report.Delayed++
		}
	}

	// On-time rate only considers shipments whose outcome is known.
	completed := report.Delivered + report.Delayed
	if completed > 0 {
		report.OnTimeRatePct = roundPct(float64(report.Delivered) / float64(completed) * 100)
	}

	for mode, n := range modeCounts {
		report.ModeSharePct[mode] = roundPct(float64(n) / float64(report.TotalShipments) * 100)
	}

	return report
}

func roundPct(v float64) float64 { return math.Round(v*10) / 10 }

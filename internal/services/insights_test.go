package services

import (
	"testing"

	"logistics-dashboard-service/internal/domain"
)

func TestComputeInsights(t *testing.T) {
	shipments := []*domain.Shipment{
		{ShipmentID: 1, Mode: domain.ModeAir, Status: domain.StatusDelivered, WeightKg: 120},
		{ShipmentID: 2, Mode: domain.ModeAir, Status: domain.StatusInTransit, WeightKg: 80},
		{ShipmentID: 3, Mode: domain.ModeLand, Status: domain.StatusDelayed, WeightKg: 300},
		{ShipmentID: 4, Mode: domain.ModeSeaLand, Status: domain.StatusDelivered, WeightKg: 500},
	}

	report := ComputeInsights(shipments)

	if report.TotalShipments != 4 {
		t.Fatalf("total = %d, want 4", report.TotalShipments)
	}
	if report.InTransit != 1 || report.Delivered != 2 || report.Delayed != 1 {
		t.Fatalf("status counts = %d/%d/%d, want 1/2/1",
			report.InTransit, report.Delivered, report.Delayed)
	}
	if report.TotalWeightKg != 1000 {
		t.Errorf("total weight = %v, want 1000", report.TotalWeightKg)
	}

	// 2 delivered out of 3 completed.
	if report.OnTimeRatePct != 66.7 {
		t.Errorf("on-time rate = %v, want 66.7", report.OnTimeRatePct)
	}

	if report.ModeSharePct[domain.ModeAir] != 50 {
		t.Errorf("air share = %v, want 50", report.ModeSharePct[domain.ModeAir])
	}
	if report.ModeSharePct[domain.ModeLand] != 25 {
		t.Errorf("land share = %v, want 25", report.ModeSharePct[domain.ModeLand])
	}
	if report.ModeSharePct[domain.ModeSeaLand] != 25 {
		t.Errorf("sea-land share = %v, want 25", report.ModeSharePct[domain.ModeSeaLand])
	}
}

func TestComputeInsightsEmpty(t *testing.T) {
	report := ComputeInsights(nil)

	if report.TotalShipments != 0 || report.OnTimeRatePct != 0 {
		t.Fatalf("empty report not zeroed: %+v", report)
	}
	if report.ModeSharePct == nil {
		t.Fatal("mode share map should be non-nil")
	}
	if len(report.ModeSharePct) != 0 {
		t.Fatalf("mode share map should be empty, got %v", report.ModeSharePct)
	}
}

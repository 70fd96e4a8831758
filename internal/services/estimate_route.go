package services

import (
	"math"

	"logistics-dashboard-service/internal/domain"
)

const earthRadiusKm = 6371.0

// DefaultWeightKg is assumed whenever a request does not carry a usable
// cargo weight.
const DefaultWeightKg = 100.0

// Base freight rate per kilometer in USD, for 100 kg of cargo.
var baseRateUSDPerKm = map[domain.TransportMode]float64{
	domain.ModeLand:    1.5,
	domain.ModeSeaLand: 2.2,
	domain.ModeAir:     3.8,
}

// Average door-to-door speed per mode in km/h.
var speedKmh = map[domain.TransportMode]float64{
	domain.ModeLand:    60,
	domain.ModeSeaLand: 30,
	domain.ModeAir:     800,
}

// DistanceKm returns the great-circle distance between two points using the
// Haversine formula. Identical points yield 0; the result is symmetric in its
// arguments.
func DistanceKm(a, b domain.Coordinates) float64 {
	dLat := rad(b.Lat - a.Lat)
	dLon := rad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

// ClassifyMode buckets a distance into a transport mode. Comparisons are
// strict, so exactly 1000 km stays land and exactly 5000 km stays sea-land.
func ClassifyMode(distanceKm float64) domain.TransportMode {
	switch {
	case distanceKm > 5000:
		return domain.ModeAir
	case distanceKm > 1000:
		return domain.ModeSeaLand
	default:
		return domain.ModeLand
	}
}

// EstimateCost returns the freight cost in whole USD for moving weightKg of
// cargo over distanceKm by the given mode. Unrecognized modes fall back to the
// land rate; non-positive or NaN weights fall back to DefaultWeightKg.
func EstimateCost(distanceKm float64, mode domain.TransportMode, weightKg float64) int {
	rate, ok := baseRateUSDPerKm[mode]
	if !ok {
		rate = baseRateUSDPerKm[domain.ModeLand]
	}

	return int(math.Round(distanceKm * rate * (normalizeWeight(weightKg) / 100)))
}

// EstimateDuration returns the transit time in whole hours for distanceKm by
// the given mode. Unrecognized modes fall back to the land speed.
func EstimateDuration(distanceKm float64, mode domain.TransportMode) int {
	speed, ok := speedKmh[mode]
	if !ok {
		speed = speedKmh[domain.ModeLand]
	}

	return int(math.Round(distanceKm / speed))
}

// Estimate computes the full route estimate between two points: distance,
// classified mode, and the cost/duration derived from that classification.
func Estimate(a, b domain.Coordinates, weightKg float64) domain.RouteEstimate {
	d := DistanceKm(a, b)
	mode := ClassifyMode(d)

	return domain.RouteEstimate{
		DistanceKm:    d,
		Mode:          mode,
		CostUSD:       EstimateCost(d, mode, weightKg),
		DurationHours: EstimateDuration(d, mode),
	}
}

func normalizeWeight(weightKg float64) float64 {
	if weightKg <= 0 || math.IsNaN(weightKg) {
		return DefaultWeightKg
	}
	return weightKg
}

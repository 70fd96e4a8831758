package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"logistics-dashboard-service/internal/domain"
	"logistics-dashboard-service/internal/ports"
)

type PlanRouteRequest struct {
	Origin      string
	Destination string
	WeightKg    float64
}

// PlanRoute resolves both endpoints through the geocoder and computes the
// route estimate between them.
//
// Lookups run sequentially (origin first) so the geocoder's per-request
// rate-limit pacing applies to each call. The returned plan carries the
// weight the estimate was actually computed with.
func PlanRoute(
	ctx context.Context,
	req PlanRouteRequest,
	geocoder ports.Geocoder,
) (*domain.RoutePlan, error) {
	origin := strings.TrimSpace(req.Origin)
	if origin == "" {
		return nil, errors.New("plan route: origin must be non-empty")
	}

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return nil, errors.New("plan route: destination must be non-empty")
	}

	originPlace, err := geocoder.Geocode(ctx, origin)
	if err != nil {
		return nil, fmt.Errorf("plan route: resolve origin %q: %w", origin, err)
	}

	destPlace, err := geocoder.Geocode(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("plan route: resolve destination %q: %w", destination, err)
	}

	weight := normalizeWeight(req.WeightKg)
	estimate := Estimate(originPlace.Coords, destPlace.Coords, weight)

	return &domain.RoutePlan{
		Origin:      originPlace,
		Destination: destPlace,
		WeightKg:    weight,
		Estimate:    estimate,
	}, nil
}

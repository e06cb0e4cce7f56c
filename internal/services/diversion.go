package services

import (
	"math"

	"flight-route-service/internal/airports"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/geo"
)

// Waypoint is one stop in a subdivided route. Airport is nil for
// synthetic points (probe fallbacks, airspace detours).
type Waypoint struct {
	Coordinates domain.Coordinates
	Airport     *domain.Airport
	NoDiversion bool
}

// DiversionPlanner subdivides a direct path so that no leg exceeds the
// configured maximum distance, preferring real airports near the probe
// point as intermediate stops.
type DiversionPlanner struct {
	Index            *airports.Index
	CorridorRadiusNM float64
}

// Plan returns the intermediate waypoints between origin and
// destination (exclusive of both). Each iteration either emits a leg
// to a corridor airport or advances exactly maxLegNM to a probe point,
// so progress is strict and the loop is additionally capped at
// ceil(total/maxLeg) plus a small constant.
func (p DiversionPlanner) Plan(origin, destination domain.Coordinates, maxLegNM float64, exclude map[string]struct{}) []Waypoint {
	used := make(map[string]struct{}, len(exclude))
	for k := range exclude {
		used[k] = struct{}{}
	}

	total := geo.Distance(origin, destination)
	maxIterations := int(math.Ceil(total/maxLegNM)) + 4

	var waypoints []Waypoint
	current := origin

	for i := 0; i < maxIterations; i++ {
		if geo.Distance(current, destination) <= maxLegNM {
			return waypoints
		}

		probe := geo.DestinationPoint(current, geo.InitialBearing(current, destination), maxLegNM)

		wp := Waypoint{Coordinates: probe, NoDiversion: true}
		for _, a := range p.Index.Nearest(probe, p.CorridorRadiusNM, used) {
			// A corridor airport beyond the probe point could stretch
			// the leg past the budget; skip those.
			if geo.Distance(current, a.Coordinates) > maxLegNM {
				continue
			}
			wp = Waypoint{Coordinates: a.Coordinates, Airport: &a}
			used[a.ICAO] = struct{}{}
			break
		}

		waypoints = append(waypoints, wp)
		current = wp.Coordinates
	}

	// Cap reached on malformed input; the final oversized leg is left
	// for the assembler to flag.
	return waypoints
}

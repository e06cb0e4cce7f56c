package services

import (
	"flight-route-service/internal/domain"
	"flight-route-service/internal/geo"
)

// AirspaceIntersector tests route segments against polygonal airspace
// boundaries and proposes lateral detours around blocking polygons.
type AirspaceIntersector struct {
	ClearanceNM float64
	RetryCap    int
}

// Intersects reports whether the segment a-b touches the polygon:
// either endpoint inside the boundary, or the segment crossing any
// boundary edge.
func (ai AirspaceIntersector) Intersects(a, b domain.Coordinates, poly domain.AirspacePolygon) bool {
	if len(poly.Ring) < 3 {
		return false
	}
	if geo.PointInPolygon(a, poly.Ring) || geo.PointInPolygon(b, poly.Ring) {
		return true
	}
	return geo.SegmentIntersectsRing(a, b, poly.Ring)
}

// Classify returns the first polygon blocking the segment a-b, or nil
// when the segment is clear.
func (ai AirspaceIntersector) Classify(a, b domain.Coordinates, polys []domain.AirspacePolygon) *domain.AirspacePolygon {
	for i := range polys {
		if ai.Intersects(a, b, polys[i]) {
			return &polys[i]
		}
	}
	return nil
}

// Detour proposes a waypoint that routes a-b clear of every polygon.
// Candidates are offset perpendicular to the segment bearing at its
// midpoint, one clearance step further out per attempt, trying both
// sides. Returns false once the retry cap is exhausted.
func (ai AirspaceIntersector) Detour(a, b domain.Coordinates, polys []domain.AirspacePolygon) (domain.Coordinates, bool) {
	mid := geo.Midpoint(a, b)
	bearing := geo.InitialBearing(a, b)

	for attempt := 1; attempt <= ai.RetryCap; attempt++ {
		offset := ai.ClearanceNM * float64(attempt)
		for _, side := range []float64{90, -90} {
			wp := geo.DestinationPoint(mid, geo.NormalizeHeading(bearing+side), offset)
			if ai.Classify(a, wp, polys) == nil && ai.Classify(wp, b, polys) == nil {
				return wp, true
			}
		}
	}

	return domain.Coordinates{}, false
}

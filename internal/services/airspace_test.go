package services

import (
	"testing"

	"flight-route-service/internal/domain"
	"flight-route-service/internal/geo"
)

// small restricted box straddling the direct path at the equator.
func blockingPolygon() domain.AirspacePolygon {
	return domain.AirspacePolygon{
		ID: "R-1", Name: "Test Restricted Area", Class: "R",
		Ring: []domain.Coordinates{
			{Lat: -0.5, Lon: 0.8},
			{Lat: 0.5, Lon: 0.8},
			{Lat: 0.5, Lon: 1.2},
			{Lat: -0.5, Lon: 1.2},
		},
	}
}

func TestIntersects(t *testing.T) {
	ai := AirspaceIntersector{ClearanceNM: 5, RetryCap: 5}
	poly := blockingPolygon()

	cases := []struct {
		name string
		a, b domain.Coordinates
		want bool
	}{
		{"crosses boundary", domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 0, Lon: 2}, true},
		{"endpoint inside", domain.Coordinates{Lat: 0, Lon: 1}, domain.Coordinates{Lat: 3, Lon: 1}, true},
		{"entirely clear", domain.Coordinates{Lat: 2, Lon: 0}, domain.Coordinates{Lat: 2, Lon: 2}, false},
	}

	for _, c := range cases {
		if got := ai.Intersects(c.a, c.b, poly); got != c.want {
			t.Errorf("%s: Intersects = %v, want %v", c.name, got, c.want)
		}
	}

	degenerate := domain.AirspacePolygon{Ring: poly.Ring[:2]}
	if ai.Intersects(domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 0, Lon: 2}, degenerate) {
		t.Error("ring with fewer than 3 vertices should never intersect")
	}
}

func TestClassify(t *testing.T) {
	ai := AirspaceIntersector{ClearanceNM: 5, RetryCap: 5}
	polys := []domain.AirspacePolygon{blockingPolygon()}

	if got := ai.Classify(domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 0, Lon: 2}, polys); got == nil || got.ID != "R-1" {
		t.Fatalf("expected blocking polygon R-1, got %v", got)
	}
	if got := ai.Classify(domain.Coordinates{Lat: 2, Lon: 0}, domain.Coordinates{Lat: 2, Lon: 2}, polys); got != nil {
		t.Fatalf("expected clear segment, got %v", got)
	}
}

func TestDetourClearsPolygon(t *testing.T) {
	ai := AirspaceIntersector{ClearanceNM: 5, RetryCap: 5}
	polys := []domain.AirspacePolygon{blockingPolygon()}

	a := domain.Coordinates{Lat: 0, Lon: 0}
	b := domain.Coordinates{Lat: 0, Lon: 2}

	wp, ok := ai.Detour(a, b, polys)
	if !ok {
		t.Fatal("expected a detour waypoint")
	}
	if ai.Classify(a, wp, polys) != nil || ai.Classify(wp, b, polys) != nil {
		t.Fatal("detour sub-legs still intersect the polygon")
	}

	// Offset stays within the retry envelope.
	if d := geo.Distance(geo.Midpoint(a, b), wp); d > ai.ClearanceNM*float64(ai.RetryCap)+0.1 {
		t.Fatalf("detour offset %f nm exceeds retry envelope", d)
	}
}

func TestDetourExhaustsRetryCap(t *testing.T) {
	// Polygon so wide that 5 nm steps on either side never clear it.
	huge := domain.AirspacePolygon{
		ID: "R-2", Class: "R",
		Ring: []domain.Coordinates{
			{Lat: -10, Lon: 0.5},
			{Lat: 10, Lon: 0.5},
			{Lat: 10, Lon: 1.5},
			{Lat: -10, Lon: 1.5},
		},
	}
	ai := AirspaceIntersector{ClearanceNM: 5, RetryCap: 5}

	_, ok := ai.Detour(domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 0, Lon: 2}, []domain.AirspacePolygon{huge})
	if ok {
		t.Fatal("expected detour to give up against an oversized polygon")
	}
}

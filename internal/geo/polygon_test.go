package geo

import (
	"testing"

	"flight-route-service/internal/domain"
)

// unit square (0,0)-(1,1), no repeated closing vertex.
var square = []domain.Coordinates{
	{Lat: 0, Lon: 0},
	{Lat: 1, Lon: 0},
	{Lat: 1, Lon: 1},
	{Lat: 0, Lon: 1},
}

func TestPointInPolygon(t *testing.T) {
	cases := []struct {
		p    domain.Coordinates
		want bool
	}{
		{domain.Coordinates{Lat: 0.5, Lon: 0.5}, true},
		{domain.Coordinates{Lat: 0.99, Lon: 0.01}, true},
		{domain.Coordinates{Lat: 1.5, Lon: 0.5}, false},
		{domain.Coordinates{Lat: 0.5, Lon: -0.1}, false},
		{domain.Coordinates{Lat: -2, Lon: -2}, false},
	}

	for _, c := range cases {
		if got := PointInPolygon(c.p, square); got != c.want {
			t.Errorf("PointInPolygon(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		p1, p2, q1, q2 domain.Coordinates
		want           bool
	}{
		// crossing
		{domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 1, Lon: 1},
			domain.Coordinates{Lat: 0, Lon: 1}, domain.Coordinates{Lat: 1, Lon: 0}, true},
		// disjoint parallel
		{domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 0, Lon: 1},
			domain.Coordinates{Lat: 1, Lon: 0}, domain.Coordinates{Lat: 1, Lon: 1}, false},
		// shared endpoint
		{domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 1, Lon: 1},
			domain.Coordinates{Lat: 1, Lon: 1}, domain.Coordinates{Lat: 2, Lon: 0}, true},
		// collinear overlap
		{domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 0, Lon: 2},
			domain.Coordinates{Lat: 0, Lon: 1}, domain.Coordinates{Lat: 0, Lon: 3}, true},
		// near miss
		{domain.Coordinates{Lat: 0, Lon: 0}, domain.Coordinates{Lat: 1, Lon: 0},
			domain.Coordinates{Lat: 0.5, Lon: 0.01}, domain.Coordinates{Lat: 1, Lon: 1}, false},
	}

	for i, c := range cases {
		if got := SegmentsIntersect(c.p1, c.p2, c.q1, c.q2); got != c.want {
			t.Errorf("case %d: SegmentsIntersect = %v, want %v", i, got, c.want)
		}
	}
}

func TestSegmentIntersectsRing(t *testing.T) {
	// slices straight through the square
	if !SegmentIntersectsRing(domain.Coordinates{Lat: 0.5, Lon: -1}, domain.Coordinates{Lat: 0.5, Lon: 2}, square) {
		t.Error("expected crossing segment to intersect ring")
	}
	// entirely outside
	if SegmentIntersectsRing(domain.Coordinates{Lat: 2, Lon: -1}, domain.Coordinates{Lat: 2, Lon: 2}, square) {
		t.Error("expected outside segment to miss ring")
	}
	// entirely inside: touches no edge
	if SegmentIntersectsRing(domain.Coordinates{Lat: 0.4, Lon: 0.4}, domain.Coordinates{Lat: 0.6, Lon: 0.6}, square) {
		t.Error("expected interior segment to cross no edge")
	}
}

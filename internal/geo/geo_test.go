package geo

import (
	"math"
	"testing"

	"flight-route-service/internal/domain"
)

var (
	jfk = domain.Coordinates{Lat: 40.6413, Lon: -73.7781}
	bos = domain.Coordinates{Lat: 42.3656, Lon: -71.0096}
)

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]domain.Coordinates{
		{jfk, bos},
		{{Lat: 0, Lon: 0}, {Lat: -33.9425, Lon: 151.1711}},
		{{Lat: 61.1744, Lon: -149.9961}, {Lat: 35.5494, Lon: 139.7798}},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		if diff := math.Abs(ab-ba) / ab; diff > 1e-6 {
			t.Errorf("distance not symmetric: %v <-> %v: %f vs %f", p[0], p[1], ab, ba)
		}
	}
}

func TestDistanceKnownValue(t *testing.T) {
	// JFK-BOS great circle is just under 162 nm.
	d := Distance(jfk, bos)
	if d < 161 || d > 163 {
		t.Fatalf("JFK-BOS distance = %f, want ~162", d)
	}
}

func TestDistanceDegenerate(t *testing.T) {
	if d := Distance(jfk, jfk); d != 0 {
		t.Fatalf("distance to self = %f, want 0", d)
	}
	if b := InitialBearing(jfk, jfk); b != 0 {
		t.Fatalf("bearing to self = %f, want 0", b)
	}
}

func TestBearingReciprocal(t *testing.T) {
	pairs := [][2]domain.Coordinates{
		{jfk, bos},
		{{Lat: 10, Lon: 20}, {Lat: -5, Lon: 45}},
		{{Lat: 47.4581, Lon: 8.5555}, {Lat: 46.2370, Lon: 6.1092}},
	}

	for _, p := range pairs {
		fwd := InitialBearing(p[0], p[1])
		back := InitialBearing(p[1], p[0])

		diff := math.Mod(math.Abs(fwd-back-180), 360)
		if diff > 180 {
			diff = 360 - diff
		}
		if diff > 0.5 {
			t.Errorf("bearings %f / %f differ from reciprocal by %f deg", fwd, back, diff)
		}
	}
}

func TestBearingRange(t *testing.T) {
	points := []domain.Coordinates{
		{Lat: 41, Lon: -73}, {Lat: 40, Lon: -73}, {Lat: 40.5, Lon: -74}, {Lat: 40.5, Lon: -72},
	}
	from := domain.Coordinates{Lat: 40.5, Lon: -73}

	for _, p := range points {
		b := InitialBearing(from, p)
		if b < 0 || b >= 360 {
			t.Errorf("bearing %f out of [0,360)", b)
		}
	}
}

func TestDestinationPointRoundTrip(t *testing.T) {
	for _, bearing := range []float64{0, 49.5, 90, 135, 225, 359} {
		for _, dist := range []float64{1, 50, 150, 500} {
			dest := DestinationPoint(jfk, bearing, dist)
			got := Distance(jfk, dest)
			if math.Abs(got-dist) > 0.01 {
				t.Errorf("bearing=%f dist=%f: projected point is %f nm away", bearing, dist, got)
			}
		}
	}
}

func TestDestinationPointAntimeridian(t *testing.T) {
	origin := domain.Coordinates{Lat: 0, Lon: 179.5}
	dest := DestinationPoint(origin, 90, 60)

	if dest.Lon < -180 || dest.Lon >= 180 {
		t.Fatalf("longitude %f not normalized", dest.Lon)
	}
	if dest.Lon > 0 {
		t.Fatalf("expected crossing to negative longitudes, got %f", dest.Lon)
	}
	if got := Distance(origin, dest); math.Abs(got-60) > 0.01 {
		t.Fatalf("distance across antimeridian = %f, want 60", got)
	}
}

func TestMidpoint(t *testing.T) {
	mid := Midpoint(jfk, bos)
	dToA := Distance(mid, jfk)
	dToB := Distance(mid, bos)
	if math.Abs(dToA-dToB) > 0.1 {
		t.Fatalf("midpoint not equidistant: %f vs %f", dToA, dToB)
	}
}

func TestNormalizeHeading(t *testing.T) {
	cases := map[float64]float64{
		0: 0, 360: 0, 361: 1, -1: 359, 720: 0, -190: 170,
	}
	for in, want := range cases {
		if got := NormalizeHeading(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("NormalizeHeading(%f) = %f, want %f", in, got, want)
		}
	}
}

package services

import (
	"testing"

	"flight-route-service/internal/airports"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/geo"
)

var (
	divJFK = domain.Coordinates{Lat: 40.6413, Lon: -73.7781}
	divBOS = domain.Coordinates{Lat: 42.3656, Lon: -71.0096}
)

func corridorIndex() *airports.Index {
	return airports.NewIndex([]domain.Airport{
		{ICAO: "KJFK", Name: "John F Kennedy International Airport", Type: "large_airport", Coordinates: divJFK},
		{ICAO: "KBOS", Name: "Logan International Airport", Type: "large_airport", Coordinates: divBOS},
		{ICAO: "KOWD", Name: "Norwood Memorial Airport", Type: "small_airport",
			Coordinates: domain.Coordinates{Lat: 42.1905, Lon: -71.1729}},
		{ICAO: "KPVD", Name: "Theodore Francis Green State Airport", Type: "medium_airport",
			Coordinates: domain.Coordinates{Lat: 41.7240, Lon: -71.4283}},
	})
}

func TestPlanNoSubdivisionNeeded(t *testing.T) {
	p := DiversionPlanner{Index: corridorIndex(), CorridorRadiusNM: 50}

	if wps := p.Plan(divJFK, divBOS, 500, nil); len(wps) != 0 {
		t.Fatalf("expected direct route, got %d waypoints", len(wps))
	}
}

func TestPlanPrefersCorridorAirport(t *testing.T) {
	exclude := map[string]struct{}{"KJFK": {}, "KBOS": {}}
	p := DiversionPlanner{Index: corridorIndex(), CorridorRadiusNM: 50}

	// JFK-BOS is ~162 nm, so a 150 nm budget needs exactly one stop,
	// and the probe point lands a few nm from Norwood.
	wps := p.Plan(divJFK, divBOS, 150, exclude)
	if len(wps) != 1 {
		t.Fatalf("expected exactly one waypoint, got %d", len(wps))
	}
	wp := wps[0]
	if wp.Airport == nil {
		t.Fatal("expected a corridor airport, got a probe point")
	}
	if wp.NoDiversion {
		t.Error("waypoint with an airport must not be flagged")
	}
	if d := geo.Distance(divJFK, wp.Coordinates); d > 150 {
		t.Errorf("leg to diversion is %f nm, exceeds the budget", d)
	}
	if d := geo.Distance(wp.Coordinates, divBOS); d > 150 {
		t.Errorf("leg from diversion is %f nm, exceeds the budget", d)
	}
}

func TestPlanFallsBackToProbe(t *testing.T) {
	p := DiversionPlanner{Index: airports.NewIndex(nil), CorridorRadiusNM: 50}

	wps := p.Plan(divJFK, divBOS, 100, nil)
	if len(wps) != 1 {
		t.Fatalf("expected one probe waypoint, got %d", len(wps))
	}
	if !wps[0].NoDiversion || wps[0].Airport != nil {
		t.Fatal("expected a synthetic probe waypoint")
	}
	if d := geo.Distance(divJFK, wps[0].Coordinates); d > 100.01 {
		t.Fatalf("probe leg is %f nm, want <= 100", d)
	}
}

func TestPlanDoesNotReuseAirports(t *testing.T) {
	p := DiversionPlanner{Index: corridorIndex(), CorridorRadiusNM: 50}

	wps := p.Plan(divJFK, divBOS, 60, map[string]struct{}{"KJFK": {}, "KBOS": {}})

	seen := map[string]int{}
	for _, wp := range wps {
		if wp.Airport != nil {
			seen[wp.Airport.ICAO]++
		}
	}
	for icao, n := range seen {
		if n > 1 {
			t.Errorf("airport %s used %d times", icao, n)
		}
		if icao == "KJFK" || icao == "KBOS" {
			t.Errorf("endpoint %s reused as a stop", icao)
		}
	}
}

func TestPlanIterationCap(t *testing.T) {
	p := DiversionPlanner{Index: airports.NewIndex(nil), CorridorRadiusNM: 50}

	total := geo.Distance(divJFK, divBOS)
	maxLeg := 50.0
	wps := p.Plan(divJFK, divBOS, maxLeg, nil)

	if limit := int(total/maxLeg) + 5; len(wps) > limit {
		t.Fatalf("%d waypoints exceeds the iteration cap %d", len(wps), limit)
	}
}

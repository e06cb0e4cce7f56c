package services

import (
	"testing"

	"flight-route-service/internal/domain"
)

func elevPtr(v float64) *float64 { return &v }

func TestMinimumSafeAltitude(t *testing.T) {
	eval := TerrainEvaluator{MarginFt: 1000}

	samples := []domain.ElevationSample{
		{ElevationFt: elevPtr(1200)},
		{ElevationFt: elevPtr(3000)},
		{ElevationFt: nil},
		{ElevationFt: elevPtr(450)},
	}

	got, ok := eval.MinimumSafeAltitude(samples)
	if !ok {
		t.Fatal("expected usable altitude")
	}
	if got != 4000 {
		t.Fatalf("minimum safe altitude = %d, want 4000", got)
	}
}

func TestMinimumSafeAltitudeConfigurableMargin(t *testing.T) {
	eval := TerrainEvaluator{MarginFt: 2000}

	got, ok := eval.MinimumSafeAltitude([]domain.ElevationSample{{ElevationFt: elevPtr(3000)}})
	if !ok || got != 5000 {
		t.Fatalf("got %d ok=%v, want 5000", got, ok)
	}
}

func TestMinimumSafeAltitudeNoData(t *testing.T) {
	eval := TerrainEvaluator{MarginFt: 1000}

	if _, ok := eval.MinimumSafeAltitude(nil); ok {
		t.Error("expected no altitude for empty profile")
	}
	if _, ok := eval.MinimumSafeAltitude([]domain.ElevationSample{{}, {}}); ok {
		t.Error("expected no altitude when all samples are unresolved")
	}
}

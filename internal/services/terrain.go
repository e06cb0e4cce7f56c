package services

import (
	"math"

	"flight-route-service/internal/domain"
)

// TerrainEvaluator derives the minimum safe cruising altitude for a leg
// from an externally supplied elevation profile.
type TerrainEvaluator struct {
	MarginFt float64
}

// MinimumSafeAltitude returns the highest sample elevation plus the
// safety margin, rounded up to a whole foot. The second return is
// false when no sample carries usable elevation data.
func (t TerrainEvaluator) MinimumSafeAltitude(samples []domain.ElevationSample) (int, bool) {
	maxElev := math.Inf(-1)
	for _, s := range samples {
		if s.ElevationFt == nil {
			continue
		}
		if *s.ElevationFt > maxElev {
			maxElev = *s.ElevationFt
		}
	}

	if math.IsInf(maxElev, -1) {
		return 0, false
	}

	return int(math.Ceil(maxElev + t.MarginFt)), true
}

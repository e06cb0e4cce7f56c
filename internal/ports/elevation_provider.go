package ports

import (
	"context"

	"flight-route-service/internal/domain"
)

// Port: a boundary for retrieving ground elevation along a path.
type ElevationProvider interface {
	// Return one sample per input point, in input order. A point the
	// provider cannot resolve carries a nil elevation rather than
	// failing the whole profile.
	ElevationProfile(ctx context.Context, points []domain.Coordinates) ([]domain.ElevationSample, error)
}

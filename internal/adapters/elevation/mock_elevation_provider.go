package elevation

import (
	"context"

	"flight-route-service/internal/domain"
)

// MockElevationProvider serves elevations from a fixed function.
type MockElevationProvider struct {
	// ElevationFt returns the elevation for a point, or nil when the
	// point should be unresolvable.
	ElevationFt func(p domain.Coordinates) *float64

	// Err, when set, fails every profile call.
	Err error
}

// NewFlatMockProvider returns a provider reporting the same elevation
// everywhere.
func NewFlatMockProvider(elevationFt float64) *MockElevationProvider {
	return &MockElevationProvider{
		ElevationFt: func(domain.Coordinates) *float64 {
			v := elevationFt
			return &v
		},
	}
}

func (m *MockElevationProvider) ElevationProfile(ctx context.Context, points []domain.Coordinates) ([]domain.ElevationSample, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]domain.ElevationSample, 0, len(points))
	for _, p := range points {
		var elev *float64
		if m.ElevationFt != nil {
			elev = m.ElevationFt(p)
		}
		out = append(out, domain.ElevationSample{Coordinates: p, ElevationFt: elev})
	}
	return out, nil
}

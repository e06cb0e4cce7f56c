package repositories

import (
	"context"

	"flight-route-service/internal/domain"
)

// MemoryAirspaceStore serves airspace polygons from memory. Used in
// tests and for deployments that load a GeoJSON file directly.
type MemoryAirspaceStore struct {
	Polygons []domain.AirspacePolygon
}

func NewMemoryAirspaceStore(polygons []domain.AirspacePolygon) *MemoryAirspaceStore {
	return &MemoryAirspaceStore{Polygons: polygons}
}

func (s *MemoryAirspaceStore) PolygonsInBoundingBox(ctx context.Context, minLat, minLon, maxLat, maxLon float64) ([]domain.AirspacePolygon, error) {
	var out []domain.AirspacePolygon
	for _, p := range s.Polygons {
		pMinLat, pMinLon, pMaxLat, pMaxLon := p.BoundingBox()
		if pMaxLat >= minLat && pMinLat <= maxLat && pMaxLon >= minLon && pMinLon <= maxLon {
			out = append(out, p)
		}
	}
	return out, nil
}

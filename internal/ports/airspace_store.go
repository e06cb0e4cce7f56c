package ports

import (
	"context"

	"flight-route-service/internal/domain"
)

// Port: a boundary for querying airspace polygon boundaries.
type AirspaceStore interface {
	// Return all polygons whose bounding box overlaps the query box.
	PolygonsInBoundingBox(ctx context.Context, minLat, minLon, maxLat, maxLon float64) ([]domain.AirspacePolygon, error)
}

package ports

import (
	"context"

	"flight-route-service/internal/domain"
)

// Port: a boundary for retrieving surface weather at a point.
type WeatherProvider interface {
	WeatherAt(ctx context.Context, point domain.Coordinates) (domain.Weather, error)
}

package ports

import (
	"context"

	"flight-route-service/internal/domain"
)

// Port: a boundary for loading the airport reference dataset.
// The dataset is read once at startup to build the in-memory index.
type AirportRepository interface {
	// Retrieve every airport in the dataset.
	ListAirports(ctx context.Context) ([]domain.Airport, error)
}

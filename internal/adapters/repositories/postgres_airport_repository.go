package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
)

// PostgresAirportRepository loads the airport reference dataset.
type PostgresAirportRepository struct {
	DB *sql.DB
}

func NewPostgresAirportRepository(db *sql.DB) *PostgresAirportRepository {
	return &PostgresAirportRepository{DB: db}
}

// ListAirports retrieves every airport row for index construction.
func (r *PostgresAirportRepository) ListAirports(ctx context.Context) (_ []domain.Airport, err error) {
	defer obs.Time(ctx, "airports.repo.ListAirports")(&err)

	if r.DB == nil {
		return nil, errors.New("airport repository: db is nil")
	}

	q := `
	SELECT ident, name, type, latitude_deg, longitude_deg, elevation_ft, closed
	FROM airports;
	`

	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list airports: query airports table: %w", err)
	}
	defer rows.Close()

	var out []domain.Airport
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ICAO, &a.Name, &a.Type, &a.Coordinates.Lat, &a.Coordinates.Lon, &a.ElevationFt, &a.Closed); err != nil {
			return nil, fmt.Errorf("list airports: scan rows: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list airports: row iteration: %w", err)
	}

	return out, nil
}

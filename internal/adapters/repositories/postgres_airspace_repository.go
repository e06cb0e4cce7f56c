package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
)

// PostgresAirspaceRepository queries airspace polygon boundaries by
// bounding box. Rings are stored as JSONB [[lat, lon], ...] arrays with
// precomputed bounding-box columns for the overlap filter.
type PostgresAirspaceRepository struct {
	DB *sql.DB
}

func NewPostgresAirspaceRepository(db *sql.DB) *PostgresAirspaceRepository {
	return &PostgresAirspaceRepository{DB: db}
}

// PolygonsInBoundingBox returns polygons whose bounding box overlaps
// the query box.
func (r *PostgresAirspaceRepository) PolygonsInBoundingBox(ctx context.Context, minLat, minLon, maxLat, maxLon float64) (_ []domain.AirspacePolygon, err error) {
	defer obs.Time(ctx, "airspaces.repo.PolygonsInBoundingBox")(&err)

	if r.DB == nil {
		return nil, errors.New("airspace repository: db is nil")
	}

	q := `
	SELECT id, name, class, ring
	FROM airspaces
	WHERE max_lat >= $1 AND min_lat <= $2
	  AND max_lon >= $3 AND min_lon <= $4;
	`

	rows, err := r.DB.QueryContext(ctx, q, minLat, maxLat, minLon, maxLon)
	if err != nil {
		return nil, fmt.Errorf("airspaces in bbox: query airspaces table: %w", err)
	}
	defer rows.Close()

	var out []domain.AirspacePolygon
	for rows.Next() {
		var p domain.AirspacePolygon
		var ringJSON []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.Class, &ringJSON); err != nil {
			return nil, fmt.Errorf("airspaces in bbox: scan rows: %w", err)
		}

		var ring [][2]float64
		if err := json.Unmarshal(ringJSON, &ring); err != nil {
			return nil, fmt.Errorf("airspaces in bbox: decode ring for %q: %w", p.ID, err)
		}
		p.Ring = make([]domain.Coordinates, 0, len(ring))
		for _, v := range ring {
			p.Ring = append(p.Ring, domain.Coordinates{Lat: v[0], Lon: v[1]})
		}

		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("airspaces in bbox: row iteration: %w", err)
	}

	return out, nil
}

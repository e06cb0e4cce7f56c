package repositories

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the reference-data tables if they do not exist.
func InitSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS airports (
			ident         TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			type          TEXT NOT NULL,
			latitude_deg  DOUBLE PRECISION NOT NULL,
			longitude_deg DOUBLE PRECISION NOT NULL,
			elevation_ft  DOUBLE PRECISION NOT NULL DEFAULT 0,
			closed        BOOLEAN NOT NULL DEFAULT FALSE
		);`,
		`CREATE TABLE IF NOT EXISTS airspaces (
			id      TEXT PRIMARY KEY,
			name    TEXT NOT NULL,
			class   TEXT NOT NULL,
			min_lat DOUBLE PRECISION NOT NULL,
			min_lon DOUBLE PRECISION NOT NULL,
			max_lat DOUBLE PRECISION NOT NULL,
			max_lon DOUBLE PRECISION NOT NULL,
			ring    JSONB NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS airspaces_bbox_idx
			ON airspaces (min_lat, max_lat, min_lon, max_lon);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

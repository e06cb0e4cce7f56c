package repositories

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// SeedAirportsFromCSV loads an OurAirports-format CSV into the
// airports table. Columns are located by header name so extra columns
// in the upstream export are ignored.
func SeedAirportsFromCSV(db *sql.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("seed airports: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("seed airports: read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"ident", "name", "type", "latitude_deg", "longitude_deg"} {
		if _, ok := col[required]; !ok {
			return fmt.Errorf("seed airports: missing column %q", required)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed airports: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO airports (ident, name, type, latitude_deg, longitude_deg, elevation_ft, closed)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (ident) DO UPDATE
	SET name = EXCLUDED.name,
		type = EXCLUDED.type,
		latitude_deg = EXCLUDED.latitude_deg,
		longitude_deg = EXCLUDED.longitude_deg,
		elevation_ft = EXCLUDED.elevation_ft,
		closed = EXCLUDED.closed;
	`)
	if err != nil {
		return fmt.Errorf("seed airports: db prepare: %w", err)
	}
	defer stmt.Close()

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("seed airports: read record: %w", err)
		}

		ident := field(rec, "ident")
		if ident == "" {
			continue
		}

		lat, errLat := strconv.ParseFloat(field(rec, "latitude_deg"), 64)
		lon, errLon := strconv.ParseFloat(field(rec, "longitude_deg"), 64)
		if errLat != nil || errLon != nil {
			continue
		}

		// Elevation is blank for many small fields; default to 0.
		elev, _ := strconv.ParseFloat(field(rec, "elevation_ft"), 64)

		typ := field(rec, "type")
		closed := typ == "closed" || field(rec, "scheduled_service") == "closed"

		if _, err := stmt.Exec(strings.ToUpper(ident), field(rec, "name"), typ, lat, lon, elev, closed); err != nil {
			return fmt.Errorf("seed airports: insert %q: %w", ident, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed airports: commit: %w", err)
	}

	return nil
}

type geoJSONFeatureCollection struct {
	Features []geoJSONFeature `json:"features"`
}

type geoJSONFeature struct {
	Properties map[string]any `json:"properties"`
	Geometry   struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	} `json:"geometry"`
}

// SeedAirspacesFromGeoJSON loads a GeoJSON FeatureCollection of
// Polygon/MultiPolygon airspace boundaries into the airspaces table.
// Only the outer ring of each polygon is kept.
func SeedAirspacesFromGeoJSON(db *sql.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed airspaces: read %q: %w", path, err)
	}

	var fc geoJSONFeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("seed airspaces: decode feature collection: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed airspaces: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO airspaces (id, name, class, min_lat, min_lon, max_lat, max_lon, ring)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		class = EXCLUDED.class,
		min_lat = EXCLUDED.min_lat,
		min_lon = EXCLUDED.min_lon,
		max_lat = EXCLUDED.max_lat,
		max_lon = EXCLUDED.max_lon,
		ring = EXCLUDED.ring;
	`)
	if err != nil {
		return fmt.Errorf("seed airspaces: db prepare: %w", err)
	}
	defer stmt.Close()

	prop := func(f geoJSONFeature, keys ...string) string {
		for _, k := range keys {
			if v, ok := f.Properties[k].(string); ok && v != "" {
				return v
			}
		}
		return ""
	}

	for fi, f := range fc.Features {
		var outerRings [][][2]float64

		switch f.Geometry.Type {
		case "Polygon":
			var rings [][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &rings); err != nil {
				return fmt.Errorf("seed airspaces: feature %d: decode polygon: %w", fi, err)
			}
			if len(rings) > 0 {
				outerRings = append(outerRings, lonLatRing(rings[0]))
			}
		case "MultiPolygon":
			var polys [][][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &polys); err != nil {
				return fmt.Errorf("seed airspaces: feature %d: decode multipolygon: %w", fi, err)
			}
			for _, rings := range polys {
				if len(rings) > 0 {
					outerRings = append(outerRings, lonLatRing(rings[0]))
				}
			}
		default:
			continue
		}

		name := prop(f, "name", "NAME")
		class := prop(f, "class", "CLASS", "type")
		baseID := prop(f, "id")
		if baseID == "" {
			baseID = fmt.Sprintf("airspace-%d", fi)
		}

		for ri, ring := range outerRings {
			if len(ring) < 3 {
				continue
			}

			id := baseID
			if len(outerRings) > 1 {
				id = fmt.Sprintf("%s#%d", baseID, ri)
			}

			minLat, minLon := ring[0][0], ring[0][1]
			maxLat, maxLon := minLat, minLon
			for _, v := range ring[1:] {
				minLat = min(minLat, v[0])
				maxLat = max(maxLat, v[0])
				minLon = min(minLon, v[1])
				maxLon = max(maxLon, v[1])
			}

			ringJSON, err := json.Marshal(ring)
			if err != nil {
				return fmt.Errorf("seed airspaces: encode ring for %q: %w", id, err)
			}

			if _, err := stmt.Exec(id, name, class, minLat, minLon, maxLat, maxLon, ringJSON); err != nil {
				return fmt.Errorf("seed airspaces: insert %q: %w", id, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed airspaces: commit: %w", err)
	}

	return nil
}

// lonLatRing converts a GeoJSON [lon, lat] ring to [lat, lon] order and
// drops a repeated closing vertex.
func lonLatRing(ring [][]float64) [][2]float64 {
	out := make([][2]float64, 0, len(ring))
	for _, v := range ring {
		if len(v) < 2 {
			continue
		}
		out = append(out, [2]float64{v[1], v[0]})
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

package airports

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"flight-route-service/internal/domain"
	"flight-route-service/internal/geo"
)

// ErrNotFound reports an airport identifier missing from the dataset.
var ErrNotFound = errors.New("airport not found")

// Index is an immutable in-memory airport lookup structure.
// It is built once from the reference dataset and is safe for
// concurrent read-only use; a data refresh rebuilds it wholesale.
type Index struct {
	byIdent map[string]int
	// grid buckets airports by 1-degree lat/lon cell for radius queries.
	grid     map[[2]int][]int
	airports []domain.Airport
}

// NewIndex builds an Index from the airport dataset.
func NewIndex(airports []domain.Airport) *Index {
	idx := &Index{
		byIdent:  make(map[string]int, len(airports)),
		grid:     make(map[[2]int][]int),
		airports: slices.Clone(airports),
	}

	for i, a := range idx.airports {
		idx.byIdent[strings.ToUpper(a.ICAO)] = i
		cell := gridCell(a.Coordinates)
		idx.grid[cell] = append(idx.grid[cell], i)
	}

	return idx
}

// Len returns the number of indexed airports.
func (idx *Index) Len() int { return len(idx.airports) }

// Resolve looks up an airport by identifier, case-insensitively.
func (idx *Index) Resolve(ident string) (domain.Airport, error) {
	i, ok := idx.byIdent[strings.ToUpper(strings.TrimSpace(ident))]
	if !ok {
		return domain.Airport{}, fmt.Errorf("resolve airport %q: %w", ident, ErrNotFound)
	}
	return idx.airports[i], nil
}

// Nearest returns airports within maxRadiusNM of point, ordered by
// ascending distance, skipping excluded identifiers and airports that
// are not usable as diversion candidates. The result may be empty.
func (idx *Index) Nearest(point domain.Coordinates, maxRadiusNM float64, exclude map[string]struct{}) []domain.Airport {
	if maxRadiusNM <= 0 {
		return nil
	}

	type candidate struct {
		airport domain.Airport
		dist    float64
	}
	var found []candidate

	for _, cell := range cellsInRadius(point, maxRadiusNM) {
		for _, i := range idx.grid[cell] {
			a := idx.airports[i]
			if _, skip := exclude[a.ICAO]; skip {
				continue
			}
			if !EligibleDiversion(a) {
				continue
			}
			d := geo.Distance(point, a.Coordinates)
			if d <= maxRadiusNM {
				found = append(found, candidate{airport: a, dist: d})
			}
		}
	}

	// Identifier tie-breaker keeps ordering deterministic.
	slices.SortFunc(found, func(a, b candidate) int {
		if a.dist < b.dist {
			return -1
		}
		if a.dist > b.dist {
			return 1
		}
		return strings.Compare(a.airport.ICAO, b.airport.ICAO)
	})

	out := make([]domain.Airport, 0, len(found))
	for _, c := range found {
		out = append(out, c.airport)
	}
	return out
}

// EligibleDiversion reports whether an airport may be inserted into a
// route as an overflight/diversion point: a published 4-character
// alphanumeric identifier, a real airport type, and not closed.
func EligibleDiversion(a domain.Airport) bool {
	if a.Closed {
		return false
	}
	switch a.Type {
	case "large_airport", "medium_airport", "small_airport":
	default:
		return false
	}
	return validIdent(a.ICAO)
}

func validIdent(ident string) bool {
	if len(ident) != 4 {
		return false
	}
	if ident[0] >= '0' && ident[0] <= '9' {
		return false
	}
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		alnum := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
		if !alnum {
			return false
		}
	}
	return true
}

func gridCell(p domain.Coordinates) [2]int {
	return [2]int{int(math.Floor(p.Lat)), int(math.Floor(p.Lon))}
}

// cellsInRadius enumerates the 1-degree grid cells that can contain a
// point within radiusNM of p. One degree of latitude is 60 nm; the
// longitude span widens toward the poles.
func cellsInRadius(p domain.Coordinates, radiusNM float64) [][2]int {
	latSpan := int(math.Ceil(radiusNM/60)) + 1

	cosLat := math.Cos(p.Lat * math.Pi / 180)
	lonSpan := 180
	if cosLat > 1e-6 {
		lonSpan = int(math.Ceil(radiusNM/(60*cosLat))) + 1
		if lonSpan > 180 {
			lonSpan = 180
		}
	}

	center := gridCell(p)
	seen := make(map[[2]int]struct{})
	cells := make([][2]int, 0, (2*latSpan+1)*(2*lonSpan+1))
	for dLat := -latSpan; dLat <= latSpan; dLat++ {
		lat := center[0] + dLat
		if lat < -90 || lat > 89 {
			continue
		}
		for dLon := -lonSpan; dLon <= lonSpan; dLon++ {
			lon := center[1] + dLon
			// Wrap across the antimeridian.
			for lon < -180 {
				lon += 360
			}
			for lon > 179 {
				lon -= 360
			}
			cell := [2]int{lat, lon}
			if _, ok := seen[cell]; ok {
				continue
			}
			seen[cell] = struct{}{}
			cells = append(cells, cell)
		}
	}
	return cells
}

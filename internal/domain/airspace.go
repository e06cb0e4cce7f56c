package domain

// Represents a closed polygonal airspace boundary.
// The ring is an ordered sequence of vertices; the edge from the last
// vertex back to the first is implied and must not be repeated.
type AirspacePolygon struct {
	ID    string
	Name  string
	Class string
	Ring  []Coordinates
}

// BoundingBox returns the polygon's min/max latitude and longitude.
func (p AirspacePolygon) BoundingBox() (minLat, minLon, maxLat, maxLon float64) {
	if len(p.Ring) == 0 {
		return 0, 0, 0, 0
	}

	minLat, maxLat = p.Ring[0].Lat, p.Ring[0].Lat
	minLon, maxLon = p.Ring[0].Lon, p.Ring[0].Lon
	for _, v := range p.Ring[1:] {
		if v.Lat < minLat {
			minLat = v.Lat
		}
		if v.Lat > maxLat {
			maxLat = v.Lat
		}
		if v.Lon < minLon {
			minLon = v.Lon
		}
		if v.Lon > maxLon {
			maxLon = v.Lon
		}
	}
	return minLat, minLon, maxLat, maxLon
}

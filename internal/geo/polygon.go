package geo

import "flight-route-service/internal/domain"

// PointInPolygon reports whether p lies inside the polygon ring using a
// ray cast along increasing longitude. The ring must not repeat its
// first vertex; the closing edge is implied.
func PointInPolygon(p domain.Coordinates, ring []domain.Coordinates) bool {
	inside := false
	for i := 0; i < len(ring); i++ {
		v0, v1 := ring[i], ring[(i+1)%len(ring)]
		if (v0.Lat <= p.Lat && p.Lat < v1.Lat) || (v1.Lat <= p.Lat && p.Lat < v0.Lat) {
			lon := v0.Lon + (p.Lat-v0.Lat)*(v1.Lon-v0.Lon)/(v1.Lat-v0.Lat)
			if lon > p.Lon {
				inside = !inside
			}
		}
	}
	return inside
}

// orientation of the triplet (a, b, c): 0 collinear, 1 clockwise,
// 2 counterclockwise.
func orientation(a, b, c domain.Coordinates) int {
	v := (b.Lat-a.Lat)*(c.Lon-b.Lon) - (b.Lon-a.Lon)*(c.Lat-b.Lat)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return 2
	default:
		return 0
	}
}

// onSegment reports whether point q lies on segment pr given that
// p, q and r are collinear.
func onSegment(p, q, r domain.Coordinates) bool {
	return q.Lon <= max(p.Lon, r.Lon) && q.Lon >= min(p.Lon, r.Lon) &&
		q.Lat <= max(p.Lat, r.Lat) && q.Lat >= min(p.Lat, r.Lat)
}

// SegmentsIntersect reports whether segments p1-p2 and q1-q2 intersect,
// including collinear overlap and shared endpoints.
func SegmentsIntersect(p1, p2, q1, q2 domain.Coordinates) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == 0 && onSegment(p1, q1, p2) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, p2) {
		return true
	}
	if o3 == 0 && onSegment(q1, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(q1, p2, q2) {
		return true
	}

	return false
}

// SegmentIntersectsRing reports whether segment a-b crosses any edge of
// the polygon ring.
func SegmentIntersectsRing(a, b domain.Coordinates, ring []domain.Coordinates) bool {
	for i := 0; i < len(ring); i++ {
		v0, v1 := ring[i], ring[(i+1)%len(ring)]
		if SegmentsIntersect(a, b, v0, v1) {
			return true
		}
	}
	return false
}

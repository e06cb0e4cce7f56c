package domain

// Classification of a route segment, consumed by the presentation layer.
type SegmentType string

const (
	SegmentCruise   SegmentType = "cruise"
	SegmentClimb    SegmentType = "climb"
	SegmentDescent  SegmentType = "descent"
	SegmentAirspace SegmentType = "airspace"
	SegmentTerrain  SegmentType = "terrain"
)

// Per-leg warning codes. Warnings degrade a leg, never the whole route.
const (
	WarnNoDiversionFound    = "no_diversion_found"
	WarnAirspaceUnavoidable = "airspace_unavoidable"
	WarnTerrainUnavailable  = "terrain_data_unavailable"
)

// Represents a single straight-line segment of a planned route.
// Adjacent legs share an endpoint: leg[i].End == leg[i+1].Start.
type Leg struct {
	Start Coordinates
	End   Coordinates

	DistanceNM         float64
	TimeHr             float64
	MagneticHeadingDeg float64

	VFRAltitudeFt  int
	AltitudeUsedFt int

	Type SegmentType

	// Diversion is the overflight airport at the end of this leg, if any.
	Diversion *Airport

	Warnings []string
}

// Represents a fully planned route. Immutable once returned.
type RouteResult struct {
	// Route lists the airport identifiers visited, origin first.
	// Waypoints without an airport (probe points, detours) appear
	// under synthetic names.
	Route []string

	Legs []Leg

	TotalDistanceNM float64
	TotalTimeHr     float64

	OriginCoords      Coordinates
	DestinationCoords Coordinates

	OverflownAirports []string
	OverflownCoords   []Coordinates
	OverflownNames    []string
}

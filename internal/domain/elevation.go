package domain

// A single ground-elevation sample along a path segment.
// ElevationFt is nil when the provider could not resolve the point.
type ElevationSample struct {
	Coordinates Coordinates
	ElevationFt *float64
}

package domain

// Represents a single airport from the reference dataset.
// Airports are immutable reference data: loaded once at startup and
// read-only for the lifetime of the process.
type Airport struct {
	ICAO        string
	Name        string
	Type        string
	Coordinates Coordinates
	ElevationFt float64
	Closed      bool
}

package domain

import "fmt"

// Supported cruise speed units.
const (
	SpeedUnitKnots = "knots"
	SpeedUnitMPH   = "mph"
)

// Statute miles per hour to knots.
const mphToKnots = 0.868976

// Bounds for the per-leg distance budget, nautical miles.
const (
	MinLegDistanceNM = 50.0
	MaxLegDistanceNM = 500.0
)

// ValidationError reports a malformed or out-of-range request field.
// It aborts planning before any computation starts.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// Immutable input value object for a single route computation.
type RouteRequest struct {
	Origin      string
	Destination string

	Speed     float64
	SpeedUnit string

	CruiseAltitudeFt int

	AvoidAirspaces bool
	AvoidTerrain   bool

	MaxLegDistanceNM float64
}

// Validate checks request fields and normalizes the leg distance budget.
// The max leg distance is clamped to [50, 500] nm rather than rejected.
func (r *RouteRequest) Validate() error {
	if r.Origin == "" {
		return &ValidationError{Field: "origin", Msg: "must be non-empty"}
	}
	if r.Destination == "" {
		return &ValidationError{Field: "destination", Msg: "must be non-empty"}
	}
	if r.Speed <= 0 {
		return &ValidationError{Field: "speed", Msg: "must be positive"}
	}
	switch r.SpeedUnit {
	case SpeedUnitKnots, SpeedUnitMPH:
	case "":
		r.SpeedUnit = SpeedUnitKnots
	default:
		return &ValidationError{Field: "speed_unit", Msg: `must be "knots" or "mph"`}
	}
	if r.CruiseAltitudeFt < 0 {
		return &ValidationError{Field: "altitude", Msg: "must be non-negative"}
	}

	if r.MaxLegDistanceNM < MinLegDistanceNM {
		r.MaxLegDistanceNM = MinLegDistanceNM
	}
	if r.MaxLegDistanceNM > MaxLegDistanceNM {
		r.MaxLegDistanceNM = MaxLegDistanceNM
	}

	return nil
}

// SpeedKnots returns the requested cruise speed converted to knots.
func (r *RouteRequest) SpeedKnots() float64 {
	if r.SpeedUnit == SpeedUnitMPH {
		return r.Speed * mphToKnots
	}
	return r.Speed
}

package services

import "time"

// Policy holds the tunable planning constants. Values are policy, not
// physics: deployments override them through configuration.
type Policy struct {
	// TerrainMarginFt is added to the highest terrain sample under a
	// leg to obtain its minimum safe altitude. The source material
	// used both 1000 and 2000 ft for this concept; 1000 ft is the
	// default and the alternative remains a config choice.
	TerrainMarginFt float64

	// CorridorRadiusNM bounds how far off the probe point a diversion
	// airport may sit and still be accepted.
	CorridorRadiusNM float64

	// AirspaceClearanceNM is the lateral offset applied per detour
	// attempt when routing around a blocking polygon.
	AirspaceClearanceNM float64

	// AirspaceRetryCap bounds detour attempts before the leg is kept
	// as-is and tagged.
	AirspaceRetryCap int

	// MagneticVariationDeg is subtracted from true course to obtain
	// magnetic heading. A configured regional scalar.
	MagneticVariationDeg float64

	// ElevationSampleNM is the spacing of terrain samples along a leg.
	ElevationSampleNM float64

	// LegConcurrency bounds concurrent elevation-profile calls.
	LegConcurrency int

	// CollaboratorTimeout bounds each external elevation call.
	CollaboratorTimeout time.Duration
}

// DefaultPolicy returns the documented defaults.
func DefaultPolicy() Policy {
	return Policy{
		TerrainMarginFt:      1000,
		CorridorRadiusNM:     50,
		AirspaceClearanceNM:  5,
		AirspaceRetryCap:     5,
		MagneticVariationDeg: 0,
		ElevationSampleNM:    10,
		LegConcurrency:       4,
		CollaboratorTimeout:  5 * time.Second,
	}
}

package services

import (
	"flight-route-service/internal/geo"
)

// AltitudeSelector derives VFR cruising altitudes from magnetic course.
//
// The hemispheric rule: eastbound courses [0,180) fly odd thousands
// plus 500 ft (3500, 5500, ...), westbound courses [180,360) fly even
// thousands plus 500 ft (4500, 6500, ...).
type AltitudeSelector struct {
	MagneticVariationDeg float64
}

// MagneticHeading converts a true course to magnetic by applying the
// configured regional variation.
func (s AltitudeSelector) MagneticHeading(trueCourseDeg float64) float64 {
	return geo.NormalizeHeading(trueCourseDeg - s.MagneticVariationDeg)
}

// VFRCandidate returns the lowest legal VFR cruise altitude for the
// given magnetic heading.
func VFRCandidate(magneticHeadingDeg float64) int {
	if magneticHeadingDeg >= 0 && magneticHeadingDeg < 180 {
		return 3500
	}
	return 4500
}

// EnforceMinimum raises a VFR candidate in 2000 ft steps until it
// reaches the floor. Steps of 2000 ft never change hemispheric parity,
// so the result stays legal for the leg's heading.
func EnforceMinimum(candidateFt, floorFt int) int {
	for candidateFt < floorFt {
		candidateFt += 2000
	}
	return candidateFt
}

package geo

import (
	"math"

	"flight-route-service/internal/domain"
)

// Mean Earth radius in nautical miles.
const EarthRadiusNM = 3440.065

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// NormalizeHeading maps an angle in degrees onto [0, 360).
func NormalizeHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// normalizeLon maps a longitude onto [-180, 180) so projected points
// stay well-formed across the antimeridian.
func normalizeLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

// Distance returns the great-circle distance between two points in
// nautical miles using the haversine formula.
func Distance(a, b domain.Coordinates) float64 {
	phi1 := toRadians(a.Lat)
	phi2 := toRadians(b.Lat)
	dPhi := toRadians(b.Lat - a.Lat)
	dLambda := toRadians(b.Lon - a.Lon)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusNM * c
}

// InitialBearing returns the initial true course from a to b in degrees
// [0, 360). Identical points yield 0.
func InitialBearing(a, b domain.Coordinates) float64 {
	if a == b {
		return 0
	}

	phi1 := toRadians(a.Lat)
	phi2 := toRadians(b.Lat)
	dLambda := toRadians(b.Lon - a.Lon)

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)

	return NormalizeHeading(toDegrees(math.Atan2(y, x)))
}

// DestinationPoint projects the point reached by travelling distanceNM
// nautical miles from origin along the given initial true bearing.
func DestinationPoint(origin domain.Coordinates, bearingDeg, distanceNM float64) domain.Coordinates {
	phi1 := toRadians(origin.Lat)
	lambda1 := toRadians(origin.Lon)
	theta := toRadians(bearingDeg)
	delta := distanceNM / EarthRadiusNM

	phi2 := math.Asin(math.Sin(phi1)*math.Cos(delta) +
		math.Cos(phi1)*math.Sin(delta)*math.Cos(theta))
	lambda2 := lambda1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(phi1),
		math.Cos(delta)-math.Sin(phi1)*math.Sin(phi2))

	return domain.Coordinates{
		Lat: toDegrees(phi2),
		Lon: normalizeLon(toDegrees(lambda2)),
	}
}

// Midpoint returns the point halfway between a and b along the great circle.
func Midpoint(a, b domain.Coordinates) domain.Coordinates {
	d := Distance(a, b)
	if d == 0 {
		return a
	}
	return DestinationPoint(a, InitialBearing(a, b), d/2)
}

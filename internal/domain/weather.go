package domain

// Point-in-time surface conditions at a coordinate.
// Wind fields are nil when the provider returned no wind data.
type Weather struct {
	Coordinates  Coordinates
	TemperatureC float64
	Description  string
	WindSpeedKt  *float64
	WindDirDeg   *float64
}

package dto

type AirportResponse struct {
	ICAO      string  `json:"icao"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Elevation float64 `json:"elevation"`
}

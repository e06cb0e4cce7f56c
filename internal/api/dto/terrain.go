package dto

type TerrainProfileRequest struct {
	Points [][]float64 `json:"points"`
}

type ElevationSampleResponse struct {
	Lat       float64  `json:"lat"`
	Lon       float64  `json:"lon"`
	Elevation *float64 `json:"elevation"`
}

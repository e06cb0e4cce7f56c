package dto

type WeatherConditions struct {
	TemperatureC float64  `json:"temperature_c"`
	Description  string   `json:"description"`
	WindSpeedKt  *float64 `json:"wind_speed_kt"`
	WindDirDeg   *float64 `json:"wind_dir_deg"`
}

type WindPoint struct {
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	WindSpeedKt *float64 `json:"wind_speed_kt"`
	WindDirDeg  *float64 `json:"wind_dir_deg"`
}

type WeatherResponse struct {
	Origin             string             `json:"origin"`
	Destination        string             `json:"destination"`
	OriginWeather      *WeatherConditions `json:"origin_weather"`
	DestinationWeather *WeatherConditions `json:"destination_weather"`
	WindPoints         []WindPoint        `json:"wind_points"`
}

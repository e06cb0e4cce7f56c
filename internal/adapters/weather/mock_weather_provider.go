package weather

import (
	"context"

	"flight-route-service/internal/domain"
)

// MockWeatherProvider returns canned conditions for every point.
type MockWeatherProvider struct {
	TemperatureC float64
	Description  string
	WindSpeedKt  *float64
	WindDirDeg   *float64
	Err          error
}

func (m *MockWeatherProvider) WeatherAt(ctx context.Context, point domain.Coordinates) (domain.Weather, error) {
	if m.Err != nil {
		return domain.Weather{}, m.Err
	}

	return domain.Weather{
		Coordinates:  point,
		TemperatureC: m.TemperatureC,
		Description:  m.Description,
		WindSpeedKt:  m.WindSpeedKt,
		WindDirDeg:   m.WindDirDeg,
	}, nil
}

package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
)

const metersPerSecondToKnots = 1.943844

// OpenWeatherProvider implements WeatherProvider against the
// OpenWeatherMap current-conditions API.
type OpenWeatherProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewOpenWeatherProvider(apiKey string) (*OpenWeatherProvider, error) {
	if apiKey == "" {
		return nil, errors.New("OpenWeatherMap api key is empty")
	}

	return &OpenWeatherProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
	}, nil
}

type openWeatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed *float64 `json:"speed"`
		Deg   *float64 `json:"deg"`
	} `json:"wind"`
}

// WeatherAt fetches current surface conditions at a point.
func (o *OpenWeatherProvider) WeatherAt(ctx context.Context, point domain.Coordinates) (_ domain.Weather, err error) {
	defer obs.Time(ctx, "openweather.WeatherAt")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL, nil)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("get weather: create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("lat", fmt.Sprintf("%f", point.Lat))
	q.Set("lon", fmt.Sprintf("%f", point.Lon))
	q.Set("appid", o.apiKey)
	q.Set("units", "metric")
	req.URL.RawQuery = q.Encode()

	resp, err := o.session.Do(req)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("get weather: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Weather{}, fmt.Errorf("get weather: unexpected status %d", resp.StatusCode)
	}

	var decoded openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Weather{}, fmt.Errorf("get weather: decode response: %w", err)
	}

	w := domain.Weather{
		Coordinates:  point,
		TemperatureC: decoded.Main.Temp,
	}
	if len(decoded.Weather) > 0 {
		w.Description = decoded.Weather[0].Description
	}
	if decoded.Wind.Speed != nil {
		kt := *decoded.Wind.Speed * metersPerSecondToKnots
		w.WindSpeedKt = &kt
	}
	w.WindDirDeg = decoded.Wind.Deg

	return w, nil
}

package handlers

import (
	"log"
	"net/http"

	"flight-route-service/internal/airports"
	"flight-route-service/internal/api/dto"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/geo"
	"flight-route-service/internal/ports"
)

// Wind samples are spaced this far apart along the direct path.
const windSampleSpacingNM = 20.0

// WeatherHandler reports conditions at both route endpoints plus wind
// sample points along the direct path, for wind-barb rendering.
type WeatherHandler struct {
	Index    *airports.Index
	Provider ports.WeatherProvider
}

func (h *WeatherHandler) RouteWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Provider == nil {
		writeError(w, r, http.StatusServiceUnavailable, "weather provider not configured")
		return
	}

	origin, err := h.Index.Resolve(r.URL.Query().Get("origin"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, "invalid origin or destination ICAO code")
		return
	}
	destination, err := h.Index.Resolve(r.URL.Query().Get("destination"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, "invalid origin or destination ICAO code")
		return
	}

	h.respond(w, r, origin, destination)
}

func (h *WeatherHandler) respond(w http.ResponseWriter, r *http.Request, origin, destination domain.Airport) {
	ctx := r.Context()

	res := dto.WeatherResponse{
		Origin:      origin.ICAO,
		Destination: destination.ICAO,
		WindPoints:  []dto.WindPoint{},
	}

	// Endpoint conditions degrade to null on provider failure.
	if wx, err := h.Provider.WeatherAt(ctx, origin.Coordinates); err == nil {
		res.OriginWeather = toConditions(wx)
	} else {
		log.Printf("origin weather failed icao=%s err=%v", origin.ICAO, err)
	}
	if wx, err := h.Provider.WeatherAt(ctx, destination.Coordinates); err == nil {
		res.DestinationWeather = toConditions(wx)
	} else {
		log.Printf("destination weather failed icao=%s err=%v", destination.ICAO, err)
	}

	total := geo.Distance(origin.Coordinates, destination.Coordinates)
	nPoints := int(total/windSampleSpacingNM) + 1
	if nPoints < 2 {
		nPoints = 2
	}

	bearing := geo.InitialBearing(origin.Coordinates, destination.Coordinates)
	for i := 0; i < nPoints; i++ {
		frac := float64(i) / float64(nPoints-1)
		p := geo.DestinationPoint(origin.Coordinates, bearing, total*frac)

		wp := dto.WindPoint{Lat: p.Lat, Lon: p.Lon}
		if wx, err := h.Provider.WeatherAt(ctx, p); err == nil {
			wp.WindSpeedKt = wx.WindSpeedKt
			wp.WindDirDeg = wx.WindDirDeg
		} else {
			log.Printf("wind point weather failed lat=%.4f lon=%.4f err=%v", p.Lat, p.Lon, err)
		}
		res.WindPoints = append(res.WindPoints, wp)
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toConditions(wx domain.Weather) *dto.WeatherConditions {
	return &dto.WeatherConditions{
		TemperatureC: wx.TemperatureC,
		Description:  wx.Description,
		WindSpeedKt:  wx.WindSpeedKt,
		WindDirDeg:   wx.WindDirDeg,
	}
}

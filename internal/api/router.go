package api

import (
	"net/http"

	"flight-route-service/internal/airports"
	"flight-route-service/internal/api/handlers"
	"flight-route-service/internal/ports"
	"flight-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters).
func NewRouter(
	index *airports.Index,
	assembler *services.RouteAssembler,
	airspaceStore ports.AirspaceStore,
	elevationProvider ports.ElevationProvider,
	weatherProvider ports.WeatherProvider,
) http.Handler {
	mux := http.NewServeMux()

	airportHandler := &handlers.AirportHandler{Index: index}
	routeHandler := &handlers.RouteHandler{Assembler: assembler}
	airspaceHandler := &handlers.AirspaceHandler{Store: airspaceStore}
	terrainHandler := &handlers.TerrainHandler{Provider: elevationProvider}
	weatherHandler := &handlers.WeatherHandler{Index: index, Provider: weatherProvider}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/airport/{icao}", airportHandler.Lookup)
	mux.HandleFunc("/route", routeHandler.Plan)
	mux.HandleFunc("/airspaces", airspaceHandler.InBoundingBox)
	mux.HandleFunc("/terrain-profile", terrainHandler.Profile)
	mux.HandleFunc("/weather", weatherHandler.RouteWeather)

	return loggingMiddleware(mux)
}

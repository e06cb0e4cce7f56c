package handlers

import (
	"errors"
	"log"
	"net/http"

	"flight-route-service/internal/airports"
	"flight-route-service/internal/api/dto"
)

// AirportHandler exposes read-only airport lookups against the index.
type AirportHandler struct {
	Index *airports.Index
}

func (h *AirportHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	icao := r.PathValue("icao")
	a, err := h.Index.Resolve(icao)
	if err != nil {
		if errors.Is(err, airports.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "airport not found")
			return
		}
		log.Printf("airport lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.AirportResponse{
		ICAO:      a.ICAO,
		Name:      a.Name,
		Lat:       a.Coordinates.Lat,
		Lon:       a.Coordinates.Lon,
		Elevation: a.ElevationFt,
	})
}

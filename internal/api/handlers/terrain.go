package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"flight-route-service/internal/api/dto"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/ports"
)

// TerrainHandler resolves elevation profiles for arbitrary point lists,
// typically a leg polyline from the map layer.
type TerrainHandler struct {
	Provider ports.ElevationProvider
}

func (h *TerrainHandler) Profile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TerrainProfileRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	points := make([]domain.Coordinates, 0, len(req.Points))
	for _, p := range req.Points {
		if len(p) != 2 {
			writeError(w, r, http.StatusBadRequest, "points must be [lat, lon] pairs")
			return
		}
		points = append(points, domain.Coordinates{Lat: p[0], Lon: p[1]})
	}

	samples, err := h.Provider.ElevationProfile(r.Context(), points)
	if err != nil {
		log.Printf("terrain profile failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.ElevationSampleResponse, 0, len(samples))
	for _, s := range samples {
		res = append(res, dto.ElevationSampleResponse{
			Lat:       s.Coordinates.Lat,
			Lon:       s.Coordinates.Lon,
			Elevation: s.ElevationFt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

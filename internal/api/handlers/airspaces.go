package handlers

import (
	"log"
	"net/http"
	"strconv"

	"flight-route-service/internal/api/dto"
	"flight-route-service/internal/ports"
)

// AirspaceHandler serves bounding-box airspace polygon queries for the
// map layer.
type AirspaceHandler struct {
	Store ports.AirspaceStore
}

func (h *AirspaceHandler) InBoundingBox(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	parse := func(name string) (float64, bool) {
		v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, name+" must be a number")
			return 0, false
		}
		return v, true
	}

	minLat, ok := parse("min_lat")
	if !ok {
		return
	}
	minLon, ok := parse("min_lon")
	if !ok {
		return
	}
	maxLat, ok := parse("max_lat")
	if !ok {
		return
	}
	maxLon, ok := parse("max_lon")
	if !ok {
		return
	}

	polys, err := h.Store.PolygonsInBoundingBox(r.Context(), minLat, minLon, maxLat, maxLon)
	if err != nil {
		log.Printf("airspaces query failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListAirspacesResponse{Airspaces: make([]dto.AirspaceResponse, 0, len(polys))}
	for _, p := range polys {
		ring := make([][]float64, 0, len(p.Ring))
		for _, v := range p.Ring {
			ring = append(ring, v.CoordsToList())
		}
		res.Airspaces = append(res.Airspaces, dto.AirspaceResponse{
			ID:    p.ID,
			Name:  p.Name,
			Class: p.Class,
			Ring:  ring,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

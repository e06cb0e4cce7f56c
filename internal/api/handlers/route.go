package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math"
	"net/http"

	"flight-route-service/internal/airports"
	"flight-route-service/internal/api/dto"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/services"
)

type RouteHandler struct {
	Assembler *services.RouteAssembler
}

// Plan runs the route planning engine for a single request.
// Unknown airports map to 404 and invalid fields to 400; per-leg
// degradations ride along inside a 200 response.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

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

	result, err := h.Assembler.PlanRoute(r.Context(), domain.RouteRequest{
		Origin:           req.Origin,
		Destination:      req.Destination,
		Speed:            req.Speed,
		SpeedUnit:        req.SpeedUnit,
		CruiseAltitudeFt: req.Altitude,
		AvoidAirspaces:   req.AvoidAirspaces,
		AvoidTerrain:     req.AvoidTerrain,
		MaxLegDistanceNM: req.MaxLegDistance,
	})
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			writeError(w, r, http.StatusBadRequest, ve.Error())
		case errors.Is(err, airports.ErrNotFound):
			writeError(w, r, http.StatusNotFound, "invalid origin or destination ICAO code")
		default:
			log.Printf("plan route failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(result))
}

func toRouteResponse(result *domain.RouteResult) dto.RouteResponse {
	res := dto.RouteResponse{
		Route:             result.Route,
		DistanceNM:        round1(result.TotalDistanceNM),
		TimeHr:            round2(result.TotalTimeHr),
		OverflownAirports: result.OverflownAirports,
		OriginCoords:      result.OriginCoords.CoordsToList(),
		DestinationCoords: result.DestinationCoords.CoordsToList(),
		OverflownCoords:   make([][]float64, 0, len(result.OverflownCoords)),
		OverflownNames:    result.OverflownNames,
		Segments:          make([]dto.SegmentResponse, 0, len(result.Legs)),
	}

	for _, c := range result.OverflownCoords {
		res.OverflownCoords = append(res.OverflownCoords, c.CoordsToList())
	}

	for _, leg := range result.Legs {
		seg := dto.SegmentResponse{
			Start:           leg.Start.CoordsToList(),
			End:             leg.End.CoordsToList(),
			Type:            string(leg.Type),
			DistanceNM:      round1(leg.DistanceNM),
			TimeHr:          round2(leg.TimeHr),
			MagneticHeading: round1(leg.MagneticHeadingDeg),
			VFRAltitude:     leg.VFRAltitudeFt,
			Altitude:        leg.AltitudeUsedFt,
			Warnings:        leg.Warnings,
		}
		if leg.Diversion != nil {
			seg.Diversion = leg.Diversion.ICAO
		}
		res.Segments = append(res.Segments, seg)
	}

	return res
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

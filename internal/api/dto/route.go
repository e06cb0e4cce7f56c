package dto

type RouteRequest struct {
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	Speed          float64 `json:"speed"`
	SpeedUnit      string  `json:"speed_unit"`
	Altitude       int     `json:"altitude"`
	AvoidAirspaces bool    `json:"avoid_airspaces"`
	AvoidTerrain   bool    `json:"avoid_terrain"`
	MaxLegDistance float64 `json:"max_leg_distance"`
}

type SegmentResponse struct {
	Start           []float64 `json:"start"`
	End             []float64 `json:"end"`
	Type            string    `json:"type"`
	DistanceNM      float64   `json:"distance_nm"`
	TimeHr          float64   `json:"time_hr"`
	MagneticHeading float64   `json:"magnetic_heading"`
	VFRAltitude     int       `json:"vfr_altitude"`
	Altitude        int       `json:"altitude"`
	Diversion       string    `json:"diversion,omitempty"`
	Warnings        []string  `json:"warnings,omitempty"`
}

type RouteResponse struct {
	Route             []string          `json:"route"`
	DistanceNM        float64           `json:"distance_nm"`
	TimeHr            float64           `json:"time_hr"`
	OverflownAirports []string          `json:"overflown_airports"`
	OriginCoords      []float64         `json:"origin_coords"`
	DestinationCoords []float64         `json:"destination_coords"`
	OverflownCoords   [][]float64       `json:"overflown_coords"`
	OverflownNames    []string          `json:"overflown_names"`
	Segments          []SegmentResponse `json:"segments"`
}

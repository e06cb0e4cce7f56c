package dto

type AirspaceResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Class string      `json:"class"`
	Ring  [][]float64 `json:"ring"`
}

type ListAirspacesResponse struct {
	Airspaces []AirspaceResponse `json:"airspaces"`
}

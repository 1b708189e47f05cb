package costs

// EstimateRequest is the POST /v1/costs body.
type EstimateRequest struct {
	SizeMW *float64 `json:"size_mw"`
}

// EstimateResponse carries the interpolated specific cost and the capital
// cost derived from it.
type EstimateResponse struct {
	SpecificCostEURPerMW float64 `json:"specific_cost_eur_per_mw"`
	CapitalCostEUR       float64 `json:"capital_cost_eur"`
}

// CurveResponse is the GET /v1/costs/curve body.
type CurveResponse struct {
	Anchors map[float64]float64 `json:"anchors"`
}

package costs

import (
	"fmt"
	"net/http"

	"github.com/heatgrid/heatpumpd/internal/server"
)

type service struct {
	curve *Curve
}

func (s *service) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := server.DecodeJSON(r, &req); err != nil {
		server.WriteError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.SizeMW == nil {
		server.WriteError(w, http.StatusBadRequest, fmt.Errorf("size_mw is required"))
		return
	}

	specific, err := s.curve.SpecificCost(*req.SizeMW)
	if err != nil {
		server.WriteError(w, http.StatusBadRequest, err)
		return
	}

	server.WriteJSON(w, http.StatusOK, EstimateResponse{
		SpecificCostEURPerMW: specific,
		CapitalCostEUR:       specific * *req.SizeMW,
	})
}

func (s *service) handleCurve(w http.ResponseWriter, _ *http.Request) {
	server.WriteJSON(w, http.StatusOK, CurveResponse{Anchors: s.curve.Anchors()})
}

package cop

import (
	"fmt"
	"net/http"

	"github.com/heatgrid/heatpumpd/internal/server"
)

type service struct {
	model *Model
}

func (s *service) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := server.DecodeJSON(r, &req); err != nil {
		server.WriteError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.SourceTempC == nil || req.SinkTempC == nil {
		server.WriteError(w, http.StatusBadRequest, fmt.Errorf("source_temp_c and sink_temp_c are required"))
		return
	}

	result, err := s.model.Calculate(*req.SourceTempC, *req.SinkTempC)
	if err != nil {
		server.WriteError(w, http.StatusBadRequest, err)
		return
	}

	server.WriteJSON(w, http.StatusOK, EvaluateResponse{
		COP:      result.COP,
		Class:    string(result.Class),
		DeltaTK:  result.DeltaTK,
		SinkK:    result.SinkK,
		Warnings: result.Warnings,
	})
}

func (s *service) handleModels(w http.ResponseWriter, _ *http.Request) {
	resp := ModelsResponse{QualityFactor: s.model.QualityFactor()}
	for _, class := range s.model.Classes() {
		p, ok := s.model.Params(class)
		if !ok {
			continue
		}
		resp.Models = append(resp.Models, ModelInfo{
			Class:        string(class),
			SinkOutLowC:  p.SinkOutLowC,
			SinkOutHighC: p.SinkOutHighC,
			A:            p.A,
			B:            p.B,
			C:            p.C,
			D:            p.D,
		})
	}

	server.WriteJSON(w, http.StatusOK, resp)
}

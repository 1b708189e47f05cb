package power

import (
	"fmt"
	"net/http"

	"github.com/heatgrid/heatpumpd/internal/server"
)

type service struct{}

func (s *service) handleSource(w http.ResponseWriter, r *http.Request) {
	var req SourceRequest
	if err := server.DecodeJSON(r, &req); err != nil {
		server.WriteError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.SupplyTempC == nil || req.ReturnTempC == nil || req.MassFlowKgS == nil {
		server.WriteError(w, http.StatusBadRequest, fmt.Errorf("supply_temp_c, return_temp_c and mass_flow_kg_s are required"))
		return
	}

	watts, err := SourceThermalPower(*req.SupplyTempC, *req.ReturnTempC, *req.MassFlowKgS)
	if err != nil {
		server.WriteError(w, http.StatusBadRequest, err)
		return
	}

	server.WriteJSON(w, http.StatusOK, SourceResponse{ThermalPowerW: watts})
}

func (s *service) handleOutput(w http.ResponseWriter, r *http.Request) {
	var req OutputRequest
	if err := server.DecodeJSON(r, &req); err != nil {
		server.WriteError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.COP == nil || req.SourcePowerW == nil {
		server.WriteError(w, http.StatusBadRequest, fmt.Errorf("cop and source_power_w are required"))
		return
	}

	output, err := OutputPower(*req.COP, *req.SourcePowerW)
	if err != nil {
		server.WriteError(w, http.StatusBadRequest, err)
		return
	}
	electrical, err := ElectricalPower(output, *req.COP)
	if err != nil {
		server.WriteError(w, http.StatusBadRequest, err)
		return
	}

	server.WriteJSON(w, http.StatusOK, OutputResponse{
		OutputPowerW:     output,
		ElectricalPowerW: electrical,
	})
}

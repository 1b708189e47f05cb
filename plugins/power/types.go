package power

// SourceRequest is the POST /v1/power/source body.
type SourceRequest struct {
	SupplyTempC *float64 `json:"supply_temp_c"`
	ReturnTempC *float64 `json:"return_temp_c"`
	MassFlowKgS *float64 `json:"mass_flow_kg_s"`
}

// SourceResponse is the available source thermal power.
type SourceResponse struct {
	ThermalPowerW float64 `json:"thermal_power_w"`
}

// OutputRequest is the POST /v1/power/output body.
type OutputRequest struct {
	COP          *float64 `json:"cop"`
	SourcePowerW *float64 `json:"source_power_w"`
}

// OutputResponse is the delivered output and the electrical input driving it.
type OutputResponse struct {
	OutputPowerW     float64 `json:"output_power_w"`
	ElectricalPowerW float64 `json:"electrical_power_w"`
}

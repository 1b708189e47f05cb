package fleet

import "time"

// Site is one monitored heat pump installation: a water source loop cooled
// from supply to return temperature, delivering heat at the network
// temperature.
type Site struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	SupplyTempC   float64 `json:"supply_temp_c"`
	ReturnTempC   float64 `json:"return_temp_c"`
	NetworkTempC  float64 `json:"network_temp_c"`
	MassFlowKgS   float64 `json:"mass_flow_kg_s"`
	QualityFactor float64 `json:"quality_factor,omitempty"`
}

// Evaluation is the computed operating point of one site.
type Evaluation struct {
	Site Site `json:"site"`

	Class            string   `json:"class"`
	COP              float64  `json:"cop"`
	CarnotCOP        float64  `json:"carnot_cop"`
	DeltaTK          float64  `json:"delta_t_k"`
	SourcePowerW     float64  `json:"source_power_w"`
	OutputPowerW     float64  `json:"output_power_w"`
	ElectricalPowerW float64  `json:"electrical_power_w"`
	SizeMW           float64  `json:"size_mw"`
	SpecificCostEUR  float64  `json:"specific_cost_eur_per_mw,omitempty"`
	CapitalCostEUR   float64  `json:"capital_cost_eur,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`

	EvaluatedAt time.Time `json:"evaluated_at"`
}

// Report is a fleet-wide evaluation snapshot.
type Report struct {
	ID          string       `json:"id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Sites       []Evaluation `json:"sites"`
}

// ReportResponse is the POST /v1/reports body.
type ReportResponse struct {
	ReportID string `json:"report_id"`
	Sites    int    `json:"sites"`
}

package power

import (
	_ "embed"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heatgrid/heatpumpd/internal/core"
)

//go:embed PLUGIN.md
var docsMD string

// Plugin implements the heatpumpd plugin contract.
type Plugin struct{}

func (p Plugin) ID() string {
	return "power"
}

func (p Plugin) Manifest() core.Manifest {
	return core.Manifest{
		PluginID:    "power",
		DisplayName: "Power balance",
		Version:     "0.1.0",
		Routes:      []string{"POST /v1/power/source", "POST /v1/power/output"},
	}
}

func (p Plugin) Docs() string {
	return docsMD
}

func (p Plugin) Dashboards() []core.Dashboard {
	return nil
}

func (p Plugin) RegisterRoutes(r chi.Router) {
	svc := &service{}
	r.Post("/v1/power/source", svc.handleSource)
	r.Post("/v1/power/output", svc.handleOutput)
}

func (p Plugin) Collectors() []prometheus.Collector {
	return nil
}

func (p Plugin) Health() core.HealthStatus {
	return core.HealthHealthy
}

func (p Plugin) HealthMessage() string {
	return ""
}

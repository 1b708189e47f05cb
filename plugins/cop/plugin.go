package cop

import (
	_ "embed"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heatgrid/heatpumpd/internal/core"
)

//go:embed PLUGIN.md
var docsMD string

// Plugin implements the heatpumpd plugin contract.
type Plugin struct {
	model         *Model
	health        core.HealthStatus
	healthMessage string
}

// NewPlugin constructs the COP plugin from a model.
func NewPlugin(model *Model) Plugin {
	if model == nil {
		return Plugin{health: core.HealthError, healthMessage: "cop model not configured"}
	}
	return Plugin{model: model, health: core.HealthHealthy}
}

func (p Plugin) ID() string {
	return "cop"
}

func (p Plugin) Manifest() core.Manifest {
	return core.Manifest{
		PluginID:    "cop",
		DisplayName: "COP models",
		Version:     "0.1.0",
		Routes:      []string{"POST /v1/cop", "GET /v1/cop/models"},
	}
}

func (p Plugin) Docs() string {
	return docsMD
}

func (p Plugin) Dashboards() []core.Dashboard {
	return nil
}

func (p Plugin) RegisterRoutes(r chi.Router) {
	if p.model == nil {
		return
	}
	svc := &service{model: p.model}
	r.Post("/v1/cop", svc.handleEvaluate)
	r.Get("/v1/cop/models", svc.handleModels)
}

func (p Plugin) Collectors() []prometheus.Collector {
	if p.model == nil {
		return nil
	}
	return []prometheus.Collector{NewModelCollector(p.model)}
}

func (p Plugin) Health() core.HealthStatus {
	return p.health
}

func (p Plugin) HealthMessage() string {
	return p.healthMessage
}

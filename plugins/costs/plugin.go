package costs

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
	curve         *Curve
	health        core.HealthStatus
	healthMessage string
}

// NewPlugin constructs the costs plugin from a curve.
func NewPlugin(curve *Curve) Plugin {
	if curve == nil {
		return Plugin{health: core.HealthError, healthMessage: "cost curve not configured"}
	}
	return Plugin{curve: curve, health: core.HealthHealthy}
}

func (p Plugin) ID() string {
	return "costs"
}

func (p Plugin) Manifest() core.Manifest {
	return core.Manifest{
		PluginID:    "costs",
		DisplayName: "Capital costs",
		Version:     "0.1.0",
		Routes:      []string{"POST /v1/costs", "GET /v1/costs/curve"},
	}
}

func (p Plugin) Docs() string {
	return docsMD
}

func (p Plugin) Dashboards() []core.Dashboard {
	return nil
}

func (p Plugin) RegisterRoutes(r chi.Router) {
	if p.curve == nil {
		return
	}
	svc := &service{curve: p.curve}
	r.Post("/v1/costs", svc.handleEstimate)
	r.Get("/v1/costs/curve", svc.handleCurve)
}

func (p Plugin) Collectors() []prometheus.Collector {
	return nil
}

func (p Plugin) Health() core.HealthStatus {
	return p.health
}

func (p Plugin) HealthMessage() string {
	return p.healthMessage
}

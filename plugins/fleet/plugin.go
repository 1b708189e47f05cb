package fleet

import (
	_ "embed"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heatgrid/heatpumpd/internal/archive"
	"github.com/heatgrid/heatpumpd/internal/core"
)

//go:embed PLUGIN.md
var docsMD string

//go:embed dashboard.json
var dashboardJSON []byte

// Plugin implements the heatpumpd plugin contract.
type Plugin struct {
	evaluator     *Evaluator
	sites         []Site
	store         archive.Store
	health        core.HealthStatus
	healthMessage string
}

// NewPlugin constructs the fleet plugin. The store may be nil, which leaves
// report archiving disabled.
func NewPlugin(evaluator *Evaluator, sites []Site, store archive.Store) Plugin {
	if evaluator == nil {
		return Plugin{health: core.HealthError, healthMessage: "fleet evaluator not configured"}
	}

	health := core.HealthHealthy
	message := ""
	if store == nil {
		health = core.HealthDegraded
		message = "report archive not configured"
	}

	return Plugin{
		evaluator:     evaluator,
		sites:         sites,
		store:         store,
		health:        health,
		healthMessage: message,
	}
}

func (p Plugin) ID() string {
	return "fleet"
}

func (p Plugin) Manifest() core.Manifest {
	return core.Manifest{
		PluginID:    "fleet",
		DisplayName: "Fleet",
		Version:     "0.1.0",
		Routes: []string{
			"GET /v1/sites",
			"GET /v1/sites/{siteID}",
			"POST /v1/reports",
			"GET /v1/reports/{reportID}",
		},
	}
}

func (p Plugin) Docs() string {
	return docsMD
}

func (p Plugin) Dashboards() []core.Dashboard {
	return []core.Dashboard{{Name: "fleet-overview", JSON: dashboardJSON}}
}

func (p Plugin) RegisterRoutes(r chi.Router) {
	if p.evaluator == nil {
		return
	}
	svc := &service{evaluator: p.evaluator, sites: p.sites, store: p.store}
	r.Get("/v1/sites", svc.handleListSites)
	r.Get("/v1/sites/{siteID}", svc.handleGetSite)
	r.Post("/v1/reports", svc.handleCreateReport)
	r.Get("/v1/reports/{reportID}", svc.handleGetReport)
}

func (p Plugin) Collectors() []prometheus.Collector {
	if p.evaluator == nil {
		return nil
	}
	return []prometheus.Collector{NewMetricsCollector(p.evaluator, p.sites)}
}

func (p Plugin) Health() core.HealthStatus {
	return p.health
}

func (p Plugin) HealthMessage() string {
	return p.healthMessage
}

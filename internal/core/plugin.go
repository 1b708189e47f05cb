package core

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// HealthStatus represents plugin health states for registry reporting.
type HealthStatus string

const (
	HealthHealthy  HealthStatus = "HEALTHY"
	HealthDegraded HealthStatus = "DEGRADED"
	HealthError    HealthStatus = "ERROR"
)

// Dashboard is a Grafana dashboard asset embedded by the plugin.
type Dashboard struct {
	Name string
	JSON []byte
}

// Manifest describes a plugin for discovery and registry metadata.
type Manifest struct {
	PluginID    string
	DisplayName string
	Version     string
	Routes      []string
}

// Plugin is the compile-time contract for all heatpumpd plugins.
type Plugin interface {
	ID() string
	Manifest() Manifest
	Docs() string
	Dashboards() []Dashboard
	RegisterRoutes(chi.Router)
	Collectors() []prometheus.Collector
	Health() HealthStatus
	HealthMessage() string
}

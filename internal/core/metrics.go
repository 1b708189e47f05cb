package core

import "github.com/prometheus/client_golang/prometheus"

// MetricsRegistry gathers every plugin collector into a private registry, so
// the metrics endpoint exposes exactly what the enabled plugins declare and
// nothing from the default Go registry.
func MetricsRegistry(plugins []Plugin) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	for _, p := range plugins {
		for _, collector := range p.Collectors() {
			reg.MustRegister(collector)
		}
	}
	return reg
}

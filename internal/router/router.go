package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/heatgrid/heatpumpd/internal/core"
)

// RegisterPlugins mounts plugin routes and the core registry on the router.
func RegisterPlugins(r chi.Router, plugins []core.Plugin) {
	core.NewRegistryService(plugins).RegisterRoutes(r)

	for _, p := range plugins {
		p.RegisterRoutes(r)
	}
}

package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// dashboardPath is the URL a dashboard asset is served under.
func dashboardPath(pluginID, name string) string {
	return "/dashboards/" + pluginID + "/" + name + ".json"
}

// DashboardsMap keys every plugin dashboard by its served URL path, for the
// in-memory dashboards handler.
func DashboardsMap(plugins []Plugin) map[string][]byte {
	result := make(map[string][]byte)
	for _, plugin := range plugins {
		id := plugin.Manifest().PluginID
		for _, dash := range plugin.Dashboards() {
			result[dashboardPath(id, dash.Name)] = dash.JSON
		}
	}
	return result
}

// WriteDashboards mirrors the embedded dashboards to dir/<plugin>/<name>.json
// so a Grafana file provisioner can pick them up. A blank dir disables the
// mirror.
func WriteDashboards(dir string, plugins []Plugin) error {
	if dir == "" {
		return nil
	}

	for _, plugin := range plugins {
		dashboards := plugin.Dashboards()
		if len(dashboards) == 0 {
			continue
		}

		pluginDir := filepath.Join(dir, plugin.Manifest().PluginID)
		if err := os.MkdirAll(pluginDir, 0o755); err != nil {
			return fmt.Errorf("create dashboard dir: %w", err)
		}
		for _, dash := range dashboards {
			path := filepath.Join(pluginDir, dash.Name+".json")
			if err := os.WriteFile(path, dash.JSON, 0o644); err != nil {
				return fmt.Errorf("write dashboard %s: %w", path, err)
			}
		}
	}

	return nil
}

package core

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

type fakePlugin struct {
	id     string
	health HealthStatus
}

func (p fakePlugin) ID() string { return p.id }

func (p fakePlugin) Manifest() Manifest {
	return Manifest{
		PluginID:    p.id,
		DisplayName: "Fake " + p.id,
		Version:     "0.0.1",
		Routes:      []string{"GET /v1/" + p.id},
	}
}

func (p fakePlugin) Docs() string { return "# " + p.id }

func (p fakePlugin) Dashboards() []Dashboard {
	return []Dashboard{{Name: p.id + "-overview", JSON: []byte(`{}`)}}
}

func (p fakePlugin) RegisterRoutes(chi.Router) {}

func (p fakePlugin) Collectors() []prometheus.Collector { return nil }

func (p fakePlugin) Health() HealthStatus { return p.health }

func (p fakePlugin) HealthMessage() string { return "" }

func newRegistryServer(t *testing.T, plugins ...Plugin) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	NewRegistryService(plugins).RegisterRoutes(r)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func TestRegistryList(t *testing.T) {
	server := newRegistryServer(t,
		fakePlugin{id: "alpha", health: HealthHealthy},
		fakePlugin{id: "beta", health: HealthDegraded},
	)

	resp, err := http.Get(server.URL + "/v1/plugins")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Plugins []PluginSummary `json:"plugins"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Plugins) != 2 {
		t.Fatalf("expected 2 plugins, got %d", len(body.Plugins))
	}
	if body.Plugins[0].PluginID != "alpha" || body.Plugins[0].Status != string(HealthHealthy) {
		t.Fatalf("unexpected summary: %+v", body.Plugins[0])
	}
	if body.Plugins[1].Status != string(HealthDegraded) {
		t.Fatalf("unexpected summary: %+v", body.Plugins[1])
	}
}

func TestRegistryDescribe(t *testing.T) {
	server := newRegistryServer(t, fakePlugin{id: "alpha", health: HealthHealthy})

	resp, err := http.Get(server.URL + "/v1/plugins/alpha")
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var descriptor PluginDescriptor
	if err := json.NewDecoder(resp.Body).Decode(&descriptor); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if descriptor.PluginID != "alpha" || descriptor.Docs != "# alpha" {
		t.Fatalf("unexpected descriptor: %+v", descriptor)
	}
	if len(descriptor.Dashboards) != 1 || descriptor.Dashboards[0].Path != "/dashboards/alpha/alpha-overview.json" {
		t.Fatalf("unexpected dashboards: %+v", descriptor.Dashboards)
	}
}

func TestRegistryDescribeMissing(t *testing.T) {
	server := newRegistryServer(t, fakePlugin{id: "alpha", health: HealthHealthy})

	resp, err := http.Get(server.URL + "/v1/plugins/missing")
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDashboardsMap(t *testing.T) {
	dashboards := DashboardsMap([]Plugin{fakePlugin{id: "alpha"}})
	if _, ok := dashboards["/dashboards/alpha/alpha-overview.json"]; !ok {
		t.Fatalf("missing dashboard path, got %v", dashboards)
	}
}

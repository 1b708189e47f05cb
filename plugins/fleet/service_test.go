package fleet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/heatgrid/heatpumpd/internal/archive"
)

type memoryStore struct {
	data map[string][]byte
}

func (m *memoryStore) Save(_ context.Context, id string, data []byte) error {
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[id] = data
	return nil
}

func (m *memoryStore) Load(_ context.Context, id string) ([]byte, error) {
	if data, ok := m.data[id]; ok {
		return data, nil
	}
	return nil, archive.ErrReportNotFound
}

func newTestServer(t *testing.T, store archive.Store) *httptest.Server {
	t.Helper()
	plugin := NewPlugin(newTestEvaluator(t), []Site{geothermalSite}, store)

	r := chi.NewRouter()
	plugin.RegisterRoutes(r)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func TestSitesEndpoints(t *testing.T) {
	server := newTestServer(t, nil)

	resp, err := http.Get(server.URL + "/v1/sites")
	if err != nil {
		t.Fatalf("list sites: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var list struct {
		Sites []Evaluation `json:"sites"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Sites) != 1 || list.Sites[0].Site.ID != "geo-1" {
		t.Fatalf("unexpected list: %+v", list)
	}

	single, err := http.Get(server.URL + "/v1/sites/geo-1")
	if err != nil {
		t.Fatalf("get site: %v", err)
	}
	defer single.Body.Close()
	if single.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", single.StatusCode)
	}

	missing, err := http.Get(server.URL + "/v1/sites/nope")
	if err != nil {
		t.Fatalf("get missing site: %v", err)
	}
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", missing.StatusCode)
	}
}

func TestReportRoundTrip(t *testing.T) {
	store := &memoryStore{}
	server := newTestServer(t, store)

	resp, err := http.Post(server.URL+"/v1/reports", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("create report: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created ReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ReportID == "" || created.Sites != 1 {
		t.Fatalf("unexpected create response: %+v", created)
	}

	fetched, err := http.Get(server.URL + "/v1/reports/" + created.ReportID)
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	defer fetched.Body.Close()
	if fetched.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", fetched.StatusCode)
	}

	var report Report
	if err := json.NewDecoder(fetched.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.ID != created.ReportID || len(report.Sites) != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestReportWithoutArchive(t *testing.T) {
	server := newTestServer(t, nil)

	resp, err := http.Post(server.URL+"/v1/reports", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("create report: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

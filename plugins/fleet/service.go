package fleet

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heatgrid/heatpumpd/internal/archive"
	"github.com/heatgrid/heatpumpd/internal/server"
)

type service struct {
	evaluator *Evaluator
	sites     []Site
	store     archive.Store
}

func (s *service) handleListSites(w http.ResponseWriter, _ *http.Request) {
	evals, err := s.evaluator.EvaluateAll(s.sites)
	if err != nil {
		server.WriteError(w, http.StatusInternalServerError, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string][]Evaluation{"sites": evals})
}

func (s *service) handleGetSite(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteID")
	for _, site := range s.sites {
		if site.ID != siteID {
			continue
		}
		eval, err := s.evaluator.Evaluate(site)
		if err != nil {
			server.WriteError(w, http.StatusInternalServerError, err)
			return
		}
		server.WriteJSON(w, http.StatusOK, eval)
		return
	}

	server.WriteError(w, http.StatusNotFound, fmt.Errorf("site not found: %s", siteID))
}

func (s *service) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		server.WriteError(w, http.StatusServiceUnavailable, fmt.Errorf("report archive not configured"))
		return
	}

	report, err := s.evaluator.BuildReport(s.sites)
	if err != nil {
		server.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		server.WriteError(w, http.StatusInternalServerError, fmt.Errorf("marshal report: %w", err))
		return
	}
	if err := s.store.Save(r.Context(), report.ID, data); err != nil {
		server.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	server.WriteJSON(w, http.StatusCreated, ReportResponse{
		ReportID: report.ID,
		Sites:    len(report.Sites),
	})
}

func (s *service) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		server.WriteError(w, http.StatusServiceUnavailable, fmt.Errorf("report archive not configured"))
		return
	}

	reportID := chi.URLParam(r, "reportID")
	data, err := s.store.Load(r.Context(), reportID)
	if errors.Is(err, archive.ErrReportNotFound) {
		server.WriteError(w, http.StatusNotFound, fmt.Errorf("report not found: %s", reportID))
		return
	}
	if err != nil {
		server.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"agendas-mcp/internal/dataset"
	"agendas-mcp/internal/observability/metrics"
	"agendas-mcp/internal/stats"

	"github.com/rs/zerolog/log"
)

// Handler serves the dashboard aggregates over HTTP.
type Handler struct {
	store   *dataset.Store
	metrics *metrics.DashboardMetrics
}

type errorResponse struct {
	Error  string          `json:"error"`
	Status *dataset.Status `json:"status,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Warn().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// records returns the snapshot, or writes a 503 with the load status.
func (h *Handler) records(w http.ResponseWriter) ([]stats.Record, bool) {
	records, err := h.store.Snapshot()
	if err != nil {
		st := h.store.Status()
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error(), Status: &st})
		return nil, false
	}
	return records, true
}

// selection parses facility, category, specialty and week query parameters. week may repeat
// and each value may list several weeks separated by commas.
func selection(r *http.Request) (stats.FilterSelection, error) {
	q := r.URL.Query()
	weeks := q["week"]
	weeks = append(weeks, q["weeks"]...)
	return stats.ParseSelection(q.Get("facility"), q.Get("category"), q.Get("specialty"), weeks)
}

func sortSpec(r *http.Request) (stats.SortSpec, error) {
	q := r.URL.Query()
	return stats.ParseSortSpec(q.Get("sort"), q.Get("dir"))
}

// view parses the selection and filters the snapshot, writing the error response itself.
func (h *Handler) view(w http.ResponseWriter, r *http.Request) (stats.FilterSelection, []stats.Record, []stats.Record, bool) {
	sel, err := selection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return stats.FilterSelection{}, nil, nil, false
	}
	records, ok := h.records(w)
	if !ok {
		return stats.FilterSelection{}, nil, nil, false
	}
	return sel, records, stats.Filter(records, stats.BuildPredicate(sel)), true
}

func (h *Handler) observe(view string, start time.Time) {
	h.metrics.ObserveCompute("http", view, time.Since(start).Seconds())
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Status())
}

func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reload(r.Context()); err != nil {
		st := h.store.Status()
		code := http.StatusBadGateway
		if errors.Is(err, dataset.ErrNoSources) {
			code = http.StatusInternalServerError
		}
		writeJSON(w, code, errorResponse{Error: err.Error(), Status: &st})
		return
	}
	writeJSON(w, http.StatusOK, h.store.Status())
}

func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w)
	if !ok {
		return
	}
	defer h.observe("options", time.Now())
	writeJSON(w, http.StatusOK, stats.Options(records, r.URL.Query().Get("category")))
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	spec, err := sortSpec(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sel, records, _, ok := h.view(w, r)
	if !ok {
		return
	}
	defer h.observe("dashboard", time.Now())
	writeJSON(w, http.StatusOK, stats.BuildDashboard(records, sel, spec))
}

func (h *Handler) KPIs(w http.ResponseWriter, r *http.Request) {
	sel, records, view, ok := h.view(w, r)
	if !ok {
		return
	}
	defer h.observe("kpis", time.Now())

	kpis := stats.ComputeKPIs(view)
	writeJSON(w, http.StatusOK, map[string]any{
		"selection":  sel,
		"kpis":       kpis,
		"comparison": stats.CompareWeeks(records, sel, kpis),
	})
}

func (h *Handler) Specialties(w http.ResponseWriter, r *http.Request) {
	spec, err := sortSpec(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sel, _, view, ok := h.view(w, r)
	if !ok {
		return
	}
	defer h.observe("specialties", time.Now())
	writeJSON(w, http.StatusOK, map[string]any{
		"selection":   sel,
		"sort":        spec,
		"specialties": stats.SpecialtyBreakdown(view, spec),
	})
}

func (h *Handler) Professionals(w http.ResponseWriter, r *http.Request) {
	sel, _, view, ok := h.view(w, r)
	if !ok {
		return
	}
	defer h.observe("professionals", time.Now())
	writeJSON(w, http.StatusOK, map[string]any{
		"selection":     sel,
		"professionals": stats.ProfessionalRanking(view),
	})
}

func (h *Handler) Blocked(w http.ResponseWriter, r *http.Request) {
	sel, _, view, ok := h.view(w, r)
	if !ok {
		return
	}
	defer h.observe("blocked", time.Now())
	writeJSON(w, http.StatusOK, map[string]any{
		"selection": sel,
		"blocked":   stats.BlockedRanking(view),
	})
}

func (h *Handler) Series(w http.ResponseWriter, r *http.Request) {
	sel, _, view, ok := h.view(w, r)
	if !ok {
		return
	}
	defer h.observe("series", time.Now())

	mode := stats.ModeFor(sel)
	writeJSON(w, http.StatusOK, map[string]any{
		"selection": sel,
		"series":    stats.Series{Mode: mode, Points: stats.TimeSeries(view, mode)},
	})
}

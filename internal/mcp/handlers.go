package mcp

import (
	"context"
	"fmt"
	"time"

	"agendas-mcp/internal/dataset"
	"agendas-mcp/internal/stats"
	"agendas-mcp/internal/visuals"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// KPIResponse is the payload of get_kpis.
type KPIResponse struct {
	Selection  stats.FilterSelection `json:"selection"`
	KPIs       stats.KPISummary      `json:"kpis"`
	Comparison *stats.Comparison     `json:"comparison,omitempty"`
}

// OverviewResponse is the payload of dataset_overview.
type OverviewResponse struct {
	Status  dataset.Status      `json:"status"`
	Options stats.FilterOptions `json:"options"`
}

func (s *Server) records() ([]stats.Record, error) {
	records, err := s.store.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("%w. Use 'dataset_status' for details or 'reload_dataset' to retry", err)
	}
	return records, nil
}

func (s *Server) handleDatasetStatus(ctx context.Context, req *sdk.CallToolRequest, _ NoArgs) (*sdk.CallToolResult, any, error) {
	return s.textResult(s.store.Status()), nil, nil
}

func (s *Server) handleReloadDataset(ctx context.Context, req *sdk.CallToolRequest, _ NoArgs) (*sdk.CallToolResult, any, error) {
	log.Info().Msg("Reload requested over MCP")
	if err := s.store.Reload(ctx); err != nil {
		return nil, nil, err
	}
	return s.textResult(s.store.Status()), nil, nil
}

func (s *Server) handleDatasetOverview(ctx context.Context, req *sdk.CallToolRequest, args OverviewArgs) (*sdk.CallToolResult, any, error) {
	records, err := s.records()
	if err != nil {
		return nil, nil, err
	}
	defer s.observe("options", time.Now())

	return s.textResult(OverviewResponse{
		Status:  s.store.Status(),
		Options: stats.Options(records, args.Category),
	}), nil, nil
}

func (s *Server) handleGetDashboard(ctx context.Context, req *sdk.CallToolRequest, args SortedSelectionArgs) (*sdk.CallToolResult, any, error) {
	sel, spec, err := args.selection()
	if err != nil {
		return nil, nil, err
	}
	records, err := s.records()
	if err != nil {
		return nil, nil, err
	}
	defer s.observe("dashboard", time.Now())

	d := stats.BuildDashboard(records, sel, spec)
	var chart string
	if s.opts.EnableMermaidCharts {
		chart = visuals.GenerateDashboardCharts(d)
	}
	return s.textResult(d, chart), nil, nil
}

func (s *Server) handleGetKPIs(ctx context.Context, req *sdk.CallToolRequest, args SelectionArgs) (*sdk.CallToolResult, any, error) {
	sel, err := args.selection()
	if err != nil {
		return nil, nil, err
	}
	records, err := s.records()
	if err != nil {
		return nil, nil, err
	}
	defer s.observe("kpis", time.Now())

	kpis := stats.ComputeKPIs(stats.Filter(records, stats.BuildPredicate(sel)))
	return s.textResult(KPIResponse{
		Selection:  sel,
		KPIs:       kpis,
		Comparison: stats.CompareWeeks(records, sel, kpis),
	}), nil, nil
}

func (s *Server) handleGetSpecialtyBreakdown(ctx context.Context, req *sdk.CallToolRequest, args SortedSelectionArgs) (*sdk.CallToolResult, any, error) {
	sel, spec, err := args.selection()
	if err != nil {
		return nil, nil, err
	}
	records, err := s.records()
	if err != nil {
		return nil, nil, err
	}
	defer s.observe("specialties", time.Now())

	view := stats.Filter(records, stats.BuildPredicate(sel))
	return s.textResult(map[string]any{
		"selection":   sel,
		"sort":        spec,
		"specialties": stats.SpecialtyBreakdown(view, spec),
	}), nil, nil
}

func (s *Server) handleGetProfessionalRanking(ctx context.Context, req *sdk.CallToolRequest, args SelectionArgs) (*sdk.CallToolResult, any, error) {
	sel, err := args.selection()
	if err != nil {
		return nil, nil, err
	}
	records, err := s.records()
	if err != nil {
		return nil, nil, err
	}
	defer s.observe("professionals", time.Now())

	ranking := stats.ProfessionalRanking(stats.Filter(records, stats.BuildPredicate(sel)))
	var chart string
	if s.opts.EnableMermaidCharts {
		chart = visuals.GenerateProfessionalChart(ranking)
	}
	return s.textResult(map[string]any{
		"selection":     sel,
		"professionals": ranking,
	}, chart), nil, nil
}

func (s *Server) handleGetBlockedRanking(ctx context.Context, req *sdk.CallToolRequest, args SelectionArgs) (*sdk.CallToolResult, any, error) {
	sel, err := args.selection()
	if err != nil {
		return nil, nil, err
	}
	records, err := s.records()
	if err != nil {
		return nil, nil, err
	}
	defer s.observe("blocked", time.Now())

	blocked := stats.BlockedRanking(stats.Filter(records, stats.BuildPredicate(sel)))
	var chart string
	if s.opts.EnableMermaidCharts {
		chart = visuals.GenerateBlockedChart(blocked)
	}
	return s.textResult(map[string]any{
		"selection": sel,
		"blocked":   blocked,
	}, chart), nil, nil
}

func (s *Server) handleGetTimeSeries(ctx context.Context, req *sdk.CallToolRequest, args SelectionArgs) (*sdk.CallToolResult, any, error) {
	sel, err := args.selection()
	if err != nil {
		return nil, nil, err
	}
	records, err := s.records()
	if err != nil {
		return nil, nil, err
	}
	defer s.observe("series", time.Now())

	mode := stats.ModeFor(sel)
	series := stats.Series{
		Mode:   mode,
		Points: stats.TimeSeries(stats.Filter(records, stats.BuildPredicate(sel)), mode),
	}

	var charts []string
	if s.opts.EnableMermaidCharts {
		charts = append(charts, visuals.GenerateSeriesChart(series), visuals.GenerateOccupancyChart(series))
	}
	return s.textResult(map[string]any{
		"selection": sel,
		"series":    series,
	}, charts...), nil, nil
}

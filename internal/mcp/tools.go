package mcp

import (
	"agendas-mcp/internal/stats"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// NoArgs is the input of tools without parameters.
type NoArgs struct{}

// SelectionArgs are the filter arguments shared by every aggregate tool.
type SelectionArgs struct {
	Facility  string   `json:"facility,omitempty" jsonschema:"facility (Unidade) to filter on; empty for all facilities"`
	Category  string   `json:"category,omitempty" jsonschema:"specialty category to filter on; empty for all categories"`
	Specialty string   `json:"specialty,omitempty" jsonschema:"specialty to filter on; empty for all specialties"`
	Weeks     []string `json:"weeks,omitempty" jsonschema:"week labels of the month: All or 1 to 5. Several weeks are combined. Empty means All"`
}

func (a SelectionArgs) selection() (stats.FilterSelection, error) {
	return stats.ParseSelection(a.Facility, a.Category, a.Specialty, a.Weeks)
}

// SortedSelectionArgs adds the specialty table ordering to the selection.
type SortedSelectionArgs struct {
	Facility  string   `json:"facility,omitempty" jsonschema:"facility (Unidade) to filter on; empty for all facilities"`
	Category  string   `json:"category,omitempty" jsonschema:"specialty category to filter on; empty for all categories"`
	Specialty string   `json:"specialty,omitempty" jsonschema:"specialty to filter on; empty for all specialties"`
	Weeks     []string `json:"weeks,omitempty" jsonschema:"week labels of the month: All or 1 to 5. Several weeks are combined. Empty means All"`
	Sort      string   `json:"sort,omitempty" jsonschema:"specialty sort key: name total scheduled completed absent pending free blocked occupancyRate or absenteeismRate (default total)"`
	Direction string   `json:"direction,omitempty" jsonschema:"sort direction asc or desc (default desc)"`
}

func (a SortedSelectionArgs) selection() (stats.FilterSelection, stats.SortSpec, error) {
	sel, err := SelectionArgs{Facility: a.Facility, Category: a.Category, Specialty: a.Specialty, Weeks: a.Weeks}.selection()
	if err != nil {
		return stats.FilterSelection{}, stats.SortSpec{}, err
	}
	spec, err := stats.ParseSortSpec(a.Sort, a.Direction)
	if err != nil {
		return stats.FilterSelection{}, stats.SortSpec{}, err
	}
	return sel, spec, nil
}

// OverviewArgs narrows the specialty option list.
type OverviewArgs struct {
	Category string `json:"category,omitempty" jsonschema:"only list specialties of this category"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "dataset_status",
		Description: "Report whether the scheduling dataset is loading, ready or failed, with record count, sources and the last load error. Call this first when another tool reports that the dataset is not ready.",
	}, s.handleDatasetStatus)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "reload_dataset",
		Description: "Reload the scheduling dataset from its configured sources. Use it to retry after a failed load or to pick up a newly published export. On failure the previous data stays available.",
	}, s.handleReloadDataset)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "dataset_overview",
		Description: "List the values that can be used as filters: facilities, specialty categories, specialties (optionally only those of one category) and week labels.",
	}, s.handleDatasetOverview)

	sdk.AddTool(s.server, &sdk.Tool{
		Name: "get_dashboard",
		Description: "Compute every dashboard aggregate for a selection in one call: KPIs, previous-week comparison (only when exactly one week after the first is selected), specialty table, top 10 professionals, top 5 blocked schedules and the weekly or daily series.\n\n" +
			"Weeks are fixed day ranges of the month (1: days 1-3, 2: 4-10, 3: 11-17, 4: 18-24, 5: 25-31), not calendar weeks.",
	}, s.handleGetDashboard)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "get_kpis",
		Description: "Headline indicators for a selection: total, scheduled, completed, absent, pending, free and blocked slots, occupancy rate (scheduled over non-blocked slots) and absenteeism rate (absent over scheduled). Includes the change against the previous week when exactly one week after the first is selected.",
	}, s.handleGetKPIs)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "get_specialty_breakdown",
		Description: "Per-specialty tallies and rates for a selection, ordered by the requested sort key and direction.",
	}, s.handleGetSpecialtyBreakdown)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "get_professional_ranking",
		Description: "Top 10 professionals of a selection by completed appointments. Professionals without scheduled slots are excluded.",
	}, s.handleGetProfessionalRanking)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "get_blocked_ranking",
		Description: "Top 5 professionals of a selection by blocked slots, with the distinct blocked dates.",
	}, s.handleGetBlockedRanking)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "get_time_series",
		Description: "Slot counts and occupancy per bucket: 5 weekly buckets when several or all weeks are selected, 31 daily buckets for a single week. Empty buckets are returned as zeroes.",
	}, s.handleGetTimeSeries)
}

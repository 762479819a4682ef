package stats

// Comparison holds the previous-week KPIs and the change of every metric.
type Comparison struct {
	Week     int         `json:"week"`
	Previous KPISummary  `json:"previous"`
	Changes  []KPIChange `json:"changes"`
}

// Series is the time series together with the bucketing that produced it.
type Series struct {
	Mode   SeriesMode        `json:"mode"`
	Points []TimeSeriesPoint `json:"points"`
}

// Dashboard is every aggregate of one selection.
type Dashboard struct {
	Selection     FilterSelection         `json:"selection"`
	Sort          SortSpec                `json:"sort"`
	KPIs          KPISummary              `json:"kpis"`
	Comparison    *Comparison             `json:"comparison,omitempty"`
	Specialties   []GroupBreakdown        `json:"specialties"`
	Professionals []ProfessionalBreakdown `json:"professionals"`
	Blocked       []BlockedEntry          `json:"blocked"`
	Series        Series                  `json:"series"`
}

// CompareWeeks computes the previous-week comparison for sel, or nil when sel does not
// select a single week after the first.
func CompareWeeks(records []Record, sel FilterSelection, current KPISummary) *Comparison {
	prevSel, ok := ComparisonSelection(sel)
	if !ok {
		return nil
	}
	previous := ComputeKPIs(Filter(records, BuildPredicate(prevSel)))
	return &Comparison{
		Week:     prevSel.Weeks[0].Number(),
		Previous: previous,
		Changes:  CompareKPIs(current, previous),
	}
}

// BuildDashboard recomputes every aggregate from scratch for a selection.
func BuildDashboard(records []Record, sel FilterSelection, spec SortSpec) Dashboard {
	sel = sel.Normalize()
	if spec.Key == "" {
		spec = DefaultSort()
	}

	current := Filter(records, BuildPredicate(sel))
	mode := ModeFor(sel)
	kpis := ComputeKPIs(current)

	return Dashboard{
		Selection:     sel,
		Sort:          spec,
		KPIs:          kpis,
		Comparison:    CompareWeeks(records, sel, kpis),
		Specialties:   SpecialtyBreakdown(current, spec),
		Professionals: ProfessionalRanking(current),
		Blocked:       BlockedRanking(current),
		Series: Series{
			Mode:   mode,
			Points: TimeSeries(current, mode),
		},
	}
}

package stats

// Canonical slot states. Any other value is counted in a total but in no state tally.
const (
	SlotScheduled = "Scheduled"
	SlotFree      = "Free"
	SlotBlocked   = "Blocked"
)

// Canonical outcomes of a scheduled slot. Anything else is pending.
const (
	OutcomeCompleted = "Completed"
	OutcomeAbsent    = "Absent"
)

// Record is one offered slot (scheduled, free or blocked) for one professional on one day.
// Records are loaded once and never mutated.
type Record struct {
	Facility          string `json:"facility"`
	Professional      string `json:"professional"`
	Specialty         string `json:"specialty"`
	SpecialtyCategory string `json:"specialtyCategory"`
	MonitoringStatus  string `json:"monitoringStatus"` // meaningful only when SlotState is Scheduled
	SlotState         string `json:"slotState"`
	FinalStatus       string `json:"finalStatus,omitempty"`
	CalendarDate      string `json:"calendarDate"` // YYYY-MM-DD
	StartTime         string `json:"startTime,omitempty"`
}

// KPISummary is the fixed-shape reduction of a view.
type KPISummary struct {
	Total           int     `json:"total"`
	Scheduled       int     `json:"scheduled"`
	Completed       int     `json:"completed"`
	Absent          int     `json:"absent"`
	Pending         int     `json:"pending"`
	Free            int     `json:"free"`
	Blocked         int     `json:"blocked"`
	OccupancyRate   float64 `json:"occupancyRate"`   // scheduled / (total - blocked)
	AbsenteeismRate float64 `json:"absenteeismRate"` // absent / scheduled
}

// GroupBreakdown holds the tallies and rates of one group (a specialty or a professional).
type GroupBreakdown struct {
	Name            string  `json:"name"`
	Total           int     `json:"total"`
	Scheduled       int     `json:"scheduled"`
	Completed       int     `json:"completed"`
	Absent          int     `json:"absent"`
	Pending         int     `json:"pending"`
	Free            int     `json:"free"`
	Blocked         int     `json:"blocked"`
	OccupancyRate   float64 `json:"occupancyRate"`
	AbsenteeismRate float64 `json:"absenteeismRate"`
}

// ProfessionalBreakdown is a GroupBreakdown with a compact label for chart axes.
type ProfessionalBreakdown struct {
	GroupBreakdown
	ShortName string `json:"shortName"`
}

// BlockedEntry ranks a professional by blocked slots.
type BlockedEntry struct {
	Professional string   `json:"professional"`
	Count        int      `json:"count"`
	DistinctDays int      `json:"distinctDays"`
	Days         []string `json:"days"`
	DaysLabel    string   `json:"daysLabel"`
}

// TimeSeriesPoint is one bucket of the weekly or daily series.
type TimeSeriesPoint struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	Free           int     `json:"free"`
	Blocked        int     `json:"blocked"`
	Absent         int     `json:"absent"`
	ScheduledTotal int     `json:"scheduledTotal"`
	Total          int     `json:"total"`
	OccupancyRate  float64 `json:"occupancyRate"` // one decimal
}

// SeriesMode selects the bucketing of the time series.
type SeriesMode string

const (
	ModeWeekly SeriesMode = "weekly"
	ModeDaily  SeriesMode = "daily"
)

// FilterOptions lists the values a caller can filter on.
type FilterOptions struct {
	Facilities  []string    `json:"facilities"`
	Categories  []string    `json:"categories"`
	Specialties []string    `json:"specialties"`
	Weeks       []WeekLabel `json:"weeks"`
}

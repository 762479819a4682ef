package stats

// Direction of a week-over-week change.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)

// KPIChange compares one metric against the previous week.
type KPIChange struct {
	Metric    string  `json:"metric"`
	Current   float64 `json:"current"`
	Previous  float64 `json:"previous"`
	Delta     float64 `json:"delta"`
	Direction string  `json:"direction"`
	// Favorable is nil for flat changes.
	Favorable *bool `json:"favorable,omitempty"`
	IsPercent bool  `json:"isPercent,omitempty"`
}

type kpiMetric struct {
	name      string
	value     func(KPISummary) float64
	isPercent bool
	inverted  bool // an increase is bad news
}

var kpiMetrics = []kpiMetric{
	{name: "total", value: func(k KPISummary) float64 { return float64(k.Total) }},
	{name: "occupancyRate", value: func(k KPISummary) float64 { return k.OccupancyRate }, isPercent: true},
	{name: "absenteeismRate", value: func(k KPISummary) float64 { return k.AbsenteeismRate }, isPercent: true, inverted: true},
	{name: "completed", value: func(k KPISummary) float64 { return float64(k.Completed) }},
	{name: "scheduled", value: func(k KPISummary) float64 { return float64(k.Scheduled) }},
	{name: "free", value: func(k KPISummary) float64 { return float64(k.Free) }},
	{name: "absent", value: func(k KPISummary) float64 { return float64(k.Absent) }},
	{name: "blocked", value: func(k KPISummary) float64 { return float64(k.Blocked) }},
}

// CompareKPIs lists the change of every headline metric against the previous week.
// Metrics whose previous value is zero have no meaningful baseline and are skipped.
func CompareKPIs(current, previous KPISummary) []KPIChange {
	changes := make([]KPIChange, 0, len(kpiMetrics))
	for _, m := range kpiMetrics {
		prev := m.value(previous)
		if prev == 0 {
			continue
		}
		cur := m.value(current)
		change := KPIChange{
			Metric:    m.name,
			Current:   cur,
			Previous:  prev,
			Delta:     cur - prev,
			Direction: TrendFlat,
			IsPercent: m.isPercent,
		}
		if change.Delta != 0 {
			good := change.Delta > 0
			change.Direction = TrendUp
			if change.Delta < 0 {
				change.Direction = TrendDown
			}
			if m.inverted {
				good = !good
			}
			change.Favorable = &good
		}
		changes = append(changes, change)
	}
	return changes
}

package stats

// ComputeKPIs reduces a view to its headline counts and rates.
func ComputeKPIs(view []Record) KPISummary {
	var t tally
	for _, r := range view {
		t.add(r)
	}
	return KPISummary{
		Total:           t.total,
		Scheduled:       t.scheduled,
		Completed:       t.completed,
		Absent:          t.absent,
		Pending:         t.pending(),
		Free:            t.free,
		Blocked:         t.blocked,
		OccupancyRate:   t.occupancy(),
		AbsenteeismRate: t.absenteeism(),
	}
}

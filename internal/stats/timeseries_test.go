package stats

import "testing"

func TestTimeSeries_FixedLength(t *testing.T) {
	inputs := map[string][]Record{
		"Empty":  nil,
		"Single": {slot(SlotFree, "", "2026-01-14")},
	}

	for name, view := range inputs {
		t.Run(name, func(t *testing.T) {
			if got := len(TimeSeries(view, ModeWeekly)); got != NumWeeks {
				t.Errorf("Weekly series has %d points, want %d", got, NumWeeks)
			}
			if got := len(TimeSeries(view, ModeDaily)); got != NumDays {
				t.Errorf("Daily series has %d points, want %d", got, NumDays)
			}
		})
	}
}

func TestTimeSeries_Weekly(t *testing.T) {
	view := []Record{
		slot(SlotScheduled, OutcomeCompleted, "2026-01-05"),
		slot(SlotScheduled, OutcomeAbsent, "2026-01-06"),
		slot(SlotScheduled, "Confirmed", "2026-01-07"),
		slot(SlotFree, "", "2026-01-08"),
		slot(SlotBlocked, "", "2026-01-09"),
		slot(SlotFree, "", "2026-01-30"),
	}

	points := TimeSeries(view, ModeWeekly)

	for i, p := range points {
		wantKey := string(rune('1' + i))
		if p.Key != wantKey {
			t.Errorf("Position %d: expected key %s, got %s", i, wantKey, p.Key)
		}
	}
	if points[0].Label != "Week 1" {
		t.Errorf("Unexpected label %q", points[0].Label)
	}

	w2 := points[1]
	if w2.Total != 5 || w2.ScheduledTotal != 3 || w2.Completed != 1 || w2.Absent != 1 || w2.Pending != 1 || w2.Free != 1 || w2.Blocked != 1 {
		t.Errorf("Unexpected week 2 bucket: %+v", w2)
	}
	if w2.OccupancyRate != 75 {
		t.Errorf("Expected occupancy 75, got %v", w2.OccupancyRate)
	}

	if points[0].Total != 0 || points[2].Total != 0 || points[3].Total != 0 {
		t.Error("Weeks without data must be zero-filled")
	}
	if points[4].Total != 1 || points[4].OccupancyRate != 0 {
		t.Errorf("Unexpected week 5 bucket: %+v", points[4])
	}
}

func TestTimeSeries_Daily(t *testing.T) {
	view := []Record{
		slot(SlotScheduled, OutcomeCompleted, "2026-01-03"),
		slot(SlotFree, "", "2026-01-03"),
		slot(SlotFree, "", "2026-01-03"),
		slot(SlotScheduled, "", "2026-01-31 00:00:00"),
		slot(SlotScheduled, "", "not-a-date"),
	}

	points := TimeSeries(view, ModeDaily)

	if points[0].Key != "01" || points[30].Key != "31" {
		t.Errorf("Unexpected axis %s..%s", points[0].Key, points[30].Key)
	}

	d3 := points[2]
	if d3.Total != 3 || d3.Completed != 1 || d3.Free != 2 {
		t.Errorf("Unexpected day 3 bucket: %+v", d3)
	}
	if d3.OccupancyRate != 33.3 {
		t.Errorf("Expected occupancy rounded to 33.3, got %v", d3.OccupancyRate)
	}
	if points[30].Pending != 1 {
		t.Errorf("Expected a pending slot on day 31, got %+v", points[30])
	}

	total := 0
	for _, p := range points {
		total += p.Total
	}
	if total != 4 {
		t.Errorf("Unparseable dates must not be binned daily, counted %d", total)
	}
}

func TestModeFor(t *testing.T) {
	tests := []struct {
		weeks []WeekLabel
		want  SeriesMode
	}{
		{[]WeekLabel{WeekAll}, ModeWeekly},
		{nil, ModeWeekly},
		{[]WeekLabel{"2", "3"}, ModeWeekly},
		{[]WeekLabel{"1"}, ModeDaily},
		{[]WeekLabel{"4"}, ModeDaily},
	}

	for _, tt := range tests {
		if got := ModeFor(FilterSelection{Weeks: tt.weeks}); got != tt.want {
			t.Errorf("ModeFor(%v) = %s, want %s", tt.weeks, got, tt.want)
		}
	}
}

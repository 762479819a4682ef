package stats

import (
	"math"
	"testing"
)

func TestComputeKPIs_Scenario(t *testing.T) {
	view := []Record{
		slot(SlotScheduled, OutcomeCompleted, "2026-01-05"),
		slot(SlotScheduled, OutcomeAbsent, "2026-01-05"),
		slot(SlotFree, "", "2026-01-06"),
		slot(SlotBlocked, "", "2026-01-07"),
	}

	k := ComputeKPIs(view)

	if k.Total != 4 || k.Scheduled != 2 || k.Completed != 1 || k.Absent != 1 || k.Free != 1 || k.Blocked != 1 {
		t.Fatalf("Unexpected tallies: %+v", k)
	}
	if k.Pending != 0 {
		t.Errorf("Expected 0 pending, got %d", k.Pending)
	}
	if math.Abs(k.OccupancyRate-200.0/3.0) > 1e-9 {
		t.Errorf("Expected occupancy 66.67, got %v", k.OccupancyRate)
	}
	if k.AbsenteeismRate != 50 {
		t.Errorf("Expected absenteeism 50, got %v", k.AbsenteeismRate)
	}
}

func TestComputeKPIs_Empty(t *testing.T) {
	k := ComputeKPIs(nil)
	if k != (KPISummary{}) {
		t.Errorf("Expected zero summary, got %+v", k)
	}
}

func TestComputeKPIs_UnrecognizedValues(t *testing.T) {
	view := []Record{
		slot("Reserved", OutcomeCompleted, "2026-01-05"),
		slot(SlotScheduled, "Confirmed", "2026-01-05"),
		slot(SlotScheduled, "", "2026-01-05"),
	}

	k := ComputeKPIs(view)

	if k.Total != 3 {
		t.Errorf("Expected total 3, got %d", k.Total)
	}
	if k.Scheduled != 2 || k.Completed != 0 {
		t.Errorf("Unknown slot state must not be tallied: %+v", k)
	}
	if k.Pending != 2 {
		t.Errorf("Unknown outcomes should be pending, got %d", k.Pending)
	}
	if k.OccupancyRate != Percent(2, 3) {
		t.Errorf("Expected occupancy %v, got %v", Percent(2, 3), k.OccupancyRate)
	}
}

func TestComputeKPIs_OnlyBlocked(t *testing.T) {
	view := []Record{
		slot(SlotBlocked, "", "2026-01-05"),
		slot(SlotBlocked, "", "2026-01-06"),
	}

	k := ComputeKPIs(view)
	if k.OccupancyRate != 0 || k.AbsenteeismRate != 0 {
		t.Errorf("Rates must be 0 without capacity, got %+v", k)
	}
}

func TestComputeKPIs_Partition(t *testing.T) {
	states := []string{SlotScheduled, SlotFree, SlotBlocked}
	outcomes := []string{OutcomeCompleted, OutcomeAbsent, "Pending", ""}

	var view []Record
	for i := 0; i < 97; i++ {
		view = append(view, slot(states[i%len(states)], outcomes[i%len(outcomes)], "2026-01-10"))
	}

	k := ComputeKPIs(view)

	if k.Scheduled+k.Free+k.Blocked != k.Total {
		t.Errorf("States should partition total: %+v", k)
	}
	if k.Completed+k.Absent+k.Pending != k.Scheduled {
		t.Errorf("Outcomes should partition scheduled: %+v", k)
	}
	for _, rate := range []float64{k.OccupancyRate, k.AbsenteeismRate} {
		if rate < 0 || rate > 100 {
			t.Errorf("Rate out of range: %v", rate)
		}
	}
}

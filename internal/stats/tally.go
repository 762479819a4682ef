package stats

// tally accumulates the slot counts shared by every aggregator.
type tally struct {
	total     int
	scheduled int
	completed int
	absent    int
	free      int
	blocked   int
}

func (t *tally) add(r Record) {
	t.total++
	switch r.SlotState {
	case SlotScheduled:
		t.scheduled++
		switch r.MonitoringStatus {
		case OutcomeCompleted:
			t.completed++
		case OutcomeAbsent:
			t.absent++
		}
	case SlotFree:
		t.free++
	case SlotBlocked:
		t.blocked++
	}
}

// pending is derived by exclusion so it can never drift from the other tallies.
func (t tally) pending() int {
	return t.scheduled - t.completed - t.absent
}

// capacity counts the slots that could have been booked.
func (t tally) capacity() int {
	return t.total - t.blocked
}

func (t tally) occupancy() float64 {
	return Percent(t.scheduled, t.capacity())
}

func (t tally) absenteeism() float64 {
	return Percent(t.absent, t.scheduled)
}

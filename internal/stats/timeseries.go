package stats

import (
	"fmt"
	"strconv"
)

// ModeFor picks weekly bins when several (or all) weeks are selected and daily bins for a
// single week.
func ModeFor(sel FilterSelection) SeriesMode {
	sel = sel.Normalize()
	if sel.HasAllWeeks() || len(sel.Weeks) > 1 {
		return ModeWeekly
	}
	return ModeDaily
}

// TimeSeries bins the view into exactly 5 weekly or 31 daily points. Empty buckets are kept
// as zeroes so the axis never changes shape.
func TimeSeries(view []Record, mode SeriesMode) []TimeSeriesPoint {
	var keys, labels []string
	var keyOf func(Record) (string, bool)

	if mode == ModeDaily {
		for d := 1; d <= NumDays; d++ {
			keys = append(keys, dayKey(d))
			labels = append(labels, dayKey(d))
		}
		keyOf = func(r Record) (string, bool) {
			day, ok := DayOf(r.CalendarDate)
			if !ok || day < 1 || day > NumDays {
				return "", false
			}
			return dayKey(day), true
		}
	} else {
		for w := 1; w <= NumWeeks; w++ {
			keys = append(keys, strconv.Itoa(w))
			labels = append(labels, fmt.Sprintf("Week %d", w))
		}
		keyOf = func(r Record) (string, bool) {
			return strconv.Itoa(WeekOf(r.CalendarDate)), true
		}
	}

	tallies := make(map[string]*tally, len(keys))
	for _, r := range view {
		k, ok := keyOf(r)
		if !ok {
			continue
		}
		t, found := tallies[k]
		if !found {
			t = &tally{}
			tallies[k] = t
		}
		t.add(r)
	}

	points := make([]TimeSeriesPoint, len(keys))
	for i, k := range keys {
		p := TimeSeriesPoint{Key: k, Label: labels[i]}
		if t, ok := tallies[k]; ok {
			p.Completed = t.completed
			p.Pending = t.pending()
			p.Free = t.free
			p.Blocked = t.blocked
			p.Absent = t.absent
			p.ScheduledTotal = t.scheduled
			p.Total = t.total
			p.OccupancyRate = Round1(t.occupancy())
		}
		points[i] = p
	}
	return points
}

func dayKey(day int) string {
	return fmt.Sprintf("%02d", day)
}

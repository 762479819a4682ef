package stats

import (
	"strconv"
	"strings"
)

// NumWeeks is the number of fixed weekly buckets in a month.
const NumWeeks = 5

// NumDays is the number of daily buckets in a month.
const NumDays = 31

// weekUpperBounds holds the last day-of-month of weeks 1..4; later days fall into week 5.
var weekUpperBounds = [NumWeeks - 1]int{3, 10, 17, 24}

// DayOf extracts the day of month from a YYYY-MM-DD date. Only the leading digits of the third
// segment are read, so "2026-01-05 00:00:00" yields 5. ok is false when no digits are found.
func DayOf(date string) (day int, ok bool) {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) < 3 {
		return 0, false
	}
	seg := strings.TrimSpace(parts[2])
	end := 0
	for end < len(seg) && seg[end] >= '0' && seg[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(seg[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// WeekOf maps a date to its week bucket (1..5). Unparseable days count as day 1.
func WeekOf(date string) int {
	day, ok := DayOf(date)
	if !ok {
		day = 1
	}
	for i, bound := range weekUpperBounds {
		if day <= bound {
			return i + 1
		}
	}
	return NumWeeks
}

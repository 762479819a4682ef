package stats

import (
	"slices"
	"sort"
	"strings"
)

const (
	// BlockedLimit caps the blocked-slot ranking.
	BlockedLimit = 5
	// blockedDaysShown is how many dates the label lists before eliding.
	blockedDaysShown = 3
)

// BlockedRanking ranks professionals by blocked slots, most first.
func BlockedRanking(view []Record) []BlockedEntry {
	index := make(map[string]int)
	entries := make([]BlockedEntry, 0)
	days := make([]map[string]bool, 0)

	for _, r := range view {
		if r.SlotState != SlotBlocked {
			continue
		}
		i, ok := index[r.Professional]
		if !ok {
			i = len(entries)
			index[r.Professional] = i
			entries = append(entries, BlockedEntry{Professional: r.Professional})
			days = append(days, make(map[string]bool))
		}
		entries[i].Count++
		days[i][r.CalendarDate] = true
	}

	for i := range entries {
		list := make([]string, 0, len(days[i]))
		for d := range days[i] {
			list = append(list, d)
		}
		slices.Sort(list)
		entries[i].Days = list
		entries[i].DistinctDays = len(list)
		entries[i].DaysLabel = blockedDaysLabel(list)
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Count > entries[b].Count
	})

	if len(entries) > BlockedLimit {
		entries = entries[:BlockedLimit]
	}
	return entries
}

func blockedDaysLabel(sorted []string) string {
	shown := sorted
	if len(shown) > blockedDaysShown {
		shown = shown[:blockedDaysShown]
	}
	parts := make([]string, len(shown))
	for i, d := range shown {
		parts[i] = displayDate(d)
	}
	label := strings.Join(parts, ", ")
	if len(sorted) > blockedDaysShown {
		label += "..."
	}
	return label
}

// displayDate reverses the dash-separated segments: "2026-01-05" -> "05/01/2026".
func displayDate(iso string) string {
	segs := strings.Split(iso, "-")
	slices.Reverse(segs)
	return strings.Join(segs, "/")
}

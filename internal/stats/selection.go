package stats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// WeekLabel identifies a week filter: "All" or "1".."5".
type WeekLabel string

// WeekAll selects every week.
const WeekAll WeekLabel = "All"

// ErrInvalidWeek is returned when a week label is neither "All" nor 1..5.
var ErrInvalidWeek = errors.New("invalid week label")

// WeekLabels lists the selectable week labels in display order.
func WeekLabels() []WeekLabel {
	labels := []WeekLabel{WeekAll}
	for w := 1; w <= NumWeeks; w++ {
		labels = append(labels, WeekLabel(strconv.Itoa(w)))
	}
	return labels
}

// ParseWeekLabel accepts "All" (also "todas" and the empty string) or a week number.
func ParseWeekLabel(s string) (WeekLabel, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "all", "todas":
		return WeekAll, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > NumWeeks {
		return "", fmt.Errorf("%w: %q", ErrInvalidWeek, s)
	}
	return WeekLabel(strconv.Itoa(n)), nil
}

// Number returns the week number, or 0 for "All".
func (w WeekLabel) Number() int {
	n, err := strconv.Atoi(string(w))
	if err != nil {
		return 0
	}
	return n
}

// FilterSelection is the caller's filter state. Empty strings mean "not filtered".
// Weeks is never empty once normalized and "All" never coexists with a number.
type FilterSelection struct {
	Facility          string      `json:"facility,omitempty"`
	SpecialtyCategory string      `json:"category,omitempty"`
	Specialty         string      `json:"specialty,omitempty"`
	Weeks             []WeekLabel `json:"weeks"`
}

// DefaultSelection filters nothing.
func DefaultSelection() FilterSelection {
	return FilterSelection{Weeks: []WeekLabel{WeekAll}}
}

// Normalize drops duplicate weeks and enforces the "All" rules: a selection containing "All"
// matches every week, and an empty selection falls back to "All". Order of first appearance is kept.
func (s FilterSelection) Normalize() FilterSelection {
	if s.HasAllWeeks() || len(s.Weeks) == 0 {
		s.Weeks = []WeekLabel{WeekAll}
		return s
	}

	seen := make(map[WeekLabel]bool, len(s.Weeks))
	weeks := make([]WeekLabel, 0, len(s.Weeks))
	for _, w := range s.Weeks {
		if seen[w] {
			continue
		}
		seen[w] = true
		weeks = append(weeks, w)
	}
	s.Weeks = weeks
	return s
}

// HasAllWeeks reports whether "All" is part of the selection.
func (s FilterSelection) HasAllWeeks() bool {
	for _, w := range s.Weeks {
		if w == WeekAll {
			return true
		}
	}
	return false
}

// WithWeekToggled applies a click on a week button.
func (s FilterSelection) WithWeekToggled(label WeekLabel) FilterSelection {
	if label == WeekAll {
		s.Weeks = []WeekLabel{WeekAll}
		return s
	}

	next := make([]WeekLabel, 0, len(s.Weeks)+1)
	found := false
	for _, w := range s.Weeks {
		if w == WeekAll {
			continue
		}
		if w == label {
			found = true
			continue
		}
		next = append(next, w)
	}
	if !found {
		next = append(next, label)
	}
	if len(next) == 0 {
		next = []WeekLabel{WeekAll}
	}
	s.Weeks = next
	return s
}

// WithFacilityToggled selects a facility, or clears it when it is already selected.
func (s FilterSelection) WithFacilityToggled(facility string) FilterSelection {
	s.Facility = toggle(s.Facility, facility)
	return s
}

// WithCategoryToggled selects a specialty category, or clears it when it is already selected.
func (s FilterSelection) WithCategoryToggled(category string) FilterSelection {
	s.SpecialtyCategory = toggle(s.SpecialtyCategory, category)
	return s
}

// WithSpecialtyToggled selects a specialty, or clears it when it is already selected.
func (s FilterSelection) WithSpecialtyToggled(specialty string) FilterSelection {
	s.Specialty = toggle(s.Specialty, specialty)
	return s
}

func toggle(current, value string) string {
	if current == value {
		return ""
	}
	return value
}

// SingleWeek returns the selected week number when exactly one numbered week is selected.
func (s FilterSelection) SingleWeek() (int, bool) {
	if len(s.Weeks) != 1 || s.Weeks[0] == WeekAll {
		return 0, false
	}
	n := s.Weeks[0].Number()
	return n, n > 0
}

// ParseSelection builds a normalized selection from caller input. Each weeks entry may hold
// several comma-separated labels.
func ParseSelection(facility, category, specialty string, weeks []string) (FilterSelection, error) {
	sel := FilterSelection{
		Facility:          strings.TrimSpace(facility),
		SpecialtyCategory: strings.TrimSpace(category),
		Specialty:         strings.TrimSpace(specialty),
	}
	for _, entry := range weeks {
		for _, part := range strings.Split(entry, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			label, err := ParseWeekLabel(part)
			if err != nil {
				return FilterSelection{}, err
			}
			sel.Weeks = append(sel.Weeks, label)
		}
	}
	return sel.Normalize(), nil
}

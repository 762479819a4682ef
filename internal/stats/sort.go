package stats

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// SortKey names a sortable column of the specialty table.
type SortKey string

const (
	SortName            SortKey = "name"
	SortTotal           SortKey = "total"
	SortScheduled       SortKey = "scheduled"
	SortCompleted       SortKey = "completed"
	SortAbsent          SortKey = "absent"
	SortPending         SortKey = "pending"
	SortFree            SortKey = "free"
	SortBlocked         SortKey = "blocked"
	SortOccupancyRate   SortKey = "occupancyRate"
	SortAbsenteeismRate SortKey = "absenteeismRate"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

var (
	ErrUnknownSortKey   = errors.New("unknown sort key")
	ErrInvalidDirection = errors.New("invalid sort direction")
)

// SortSpec is the (field, direction) pair applied to the specialty table.
type SortSpec struct {
	Key       SortKey   `json:"key"`
	Direction Direction `json:"direction"`
}

// DefaultSort orders the specialty table by volume, largest first.
func DefaultSort() SortSpec {
	return SortSpec{Key: SortTotal, Direction: Desc}
}

// SortKeys lists every accepted sort key.
func SortKeys() []SortKey {
	return []SortKey{
		SortName, SortTotal, SortScheduled, SortCompleted, SortAbsent,
		SortPending, SortFree, SortBlocked, SortOccupancyRate, SortAbsenteeismRate,
	}
}

// ParseSortKey matches a key case-insensitively; empty input yields the default key.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSort().Key, nil
	}
	for _, k := range SortKeys() {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// ParseDirection accepts "asc" or "desc"; empty input yields descending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc":
		return Desc, nil
	case "asc":
		return Asc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// ParseSortSpec validates a key and direction pair.
func ParseSortSpec(key, dir string) (SortSpec, error) {
	k, err := ParseSortKey(key)
	if err != nil {
		return SortSpec{}, err
	}
	d, err := ParseDirection(dir)
	if err != nil {
		return SortSpec{}, err
	}
	return SortSpec{Key: k, Direction: d}, nil
}

// ToggleSort applies a click on a column header: the active descending column flips to
// ascending, anything else sorts descending.
func ToggleSort(current SortSpec, key SortKey) SortSpec {
	if current.Key == key && current.Direction == Desc {
		return SortSpec{Key: key, Direction: Asc}
	}
	return SortSpec{Key: key, Direction: Desc}
}

// SortGroups orders groups in place. Ties keep their input order; an unknown key leaves the
// order untouched.
func SortGroups(groups []GroupBreakdown, spec SortSpec) {
	less := groupLess(spec.Key)
	if less == nil {
		return
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if spec.Direction == Asc {
			return less(groups[i], groups[j])
		}
		return less(groups[j], groups[i])
	})
}

func groupLess(key SortKey) func(a, b GroupBreakdown) bool {
	byInt := func(f func(GroupBreakdown) int) func(a, b GroupBreakdown) bool {
		return func(a, b GroupBreakdown) bool { return f(a) < f(b) }
	}
	byFloat := func(f func(GroupBreakdown) float64) func(a, b GroupBreakdown) bool {
		return func(a, b GroupBreakdown) bool { return f(a) < f(b) }
	}

	switch key {
	case SortName:
		return func(a, b GroupBreakdown) bool { return a.Name < b.Name }
	case SortTotal:
		return byInt(func(g GroupBreakdown) int { return g.Total })
	case SortScheduled:
		return byInt(func(g GroupBreakdown) int { return g.Scheduled })
	case SortCompleted:
		return byInt(func(g GroupBreakdown) int { return g.Completed })
	case SortAbsent:
		return byInt(func(g GroupBreakdown) int { return g.Absent })
	case SortPending:
		return byInt(func(g GroupBreakdown) int { return g.Pending })
	case SortFree:
		return byInt(func(g GroupBreakdown) int { return g.Free })
	case SortBlocked:
		return byInt(func(g GroupBreakdown) int { return g.Blocked })
	case SortOccupancyRate:
		return byFloat(func(g GroupBreakdown) float64 { return g.OccupancyRate })
	case SortAbsenteeismRate:
		return byFloat(func(g GroupBreakdown) float64 { return g.AbsenteeismRate })
	}
	return nil
}

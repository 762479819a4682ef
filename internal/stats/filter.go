package stats

import "strconv"

// Predicate decides whether a record belongs to a view.
type Predicate func(Record) bool

// BuildPredicate turns a selection into a conjunctive predicate over records.
func BuildPredicate(sel FilterSelection) Predicate {
	sel = sel.Normalize()

	var weeks map[string]bool
	if !sel.HasAllWeeks() {
		weeks = make(map[string]bool, len(sel.Weeks))
		for _, w := range sel.Weeks {
			weeks[string(w)] = true
		}
	}

	return func(r Record) bool {
		if sel.Facility != "" && r.Facility != sel.Facility {
			return false
		}
		if sel.SpecialtyCategory != "" && r.SpecialtyCategory != sel.SpecialtyCategory {
			return false
		}
		if sel.Specialty != "" && r.Specialty != sel.Specialty {
			return false
		}
		if weeks != nil && !weeks[strconv.Itoa(WeekOf(r.CalendarDate))] {
			return false
		}
		return true
	}
}

// Filter returns the records matching pred, in input order.
func Filter(records []Record, pred Predicate) []Record {
	out := make([]Record, 0)
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// ComparisonSelection returns the selection for the week before the selected one. It only
// applies when exactly one numbered week other than week 1 is selected.
func ComparisonSelection(sel FilterSelection) (FilterSelection, bool) {
	sel = sel.Normalize()
	week, ok := sel.SingleWeek()
	if !ok || week <= 1 {
		return FilterSelection{}, false
	}
	sel.Weeks = []WeekLabel{WeekLabel(strconv.Itoa(week - 1))}
	return sel, true
}

// Views filters the records into the current view and, when the selection asks for a
// week-over-week comparison, the previous-week view.
func Views(records []Record, sel FilterSelection) (current, previous []Record, compare bool) {
	current = Filter(records, BuildPredicate(sel))
	prevSel, ok := ComparisonSelection(sel)
	if !ok {
		return current, nil, false
	}
	return current, Filter(records, BuildPredicate(prevSel)), true
}

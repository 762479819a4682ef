package stats

import (
	"errors"
	"reflect"
	"testing"
)

func TestWithWeekToggled(t *testing.T) {
	tests := []struct {
		name   string
		start  []WeekLabel
		toggle WeekLabel
		want   []WeekLabel
	}{
		{"NumberReplacesAll", []WeekLabel{WeekAll}, "2", []WeekLabel{"2"}},
		{"AddSecondWeek", []WeekLabel{"2"}, "4", []WeekLabel{"2", "4"}},
		{"RemoveWeek", []WeekLabel{"2", "4"}, "2", []WeekLabel{"4"}},
		{"RemoveLastRevertsToAll", []WeekLabel{"4"}, "4", []WeekLabel{WeekAll}},
		{"AllClearsNumbers", []WeekLabel{"1", "3"}, WeekAll, []WeekLabel{WeekAll}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSelection{Weeks: tt.start}.WithWeekToggled(tt.toggle)
			if !reflect.DeepEqual(got.Weeks, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got.Weeks)
			}
		})
	}
}

func TestWithWeekToggled_DoesNotMutateInput(t *testing.T) {
	start := []WeekLabel{"2", "3"}
	sel := FilterSelection{Weeks: start}
	_ = sel.WithWeekToggled("2")

	if !reflect.DeepEqual(start, []WeekLabel{"2", "3"}) {
		t.Errorf("Input selection was mutated: %v", start)
	}
}

func TestDimensionToggles(t *testing.T) {
	sel := DefaultSelection().WithFacilityToggled("A")
	if sel.Facility != "A" {
		t.Fatalf("Expected facility A, got %q", sel.Facility)
	}
	sel = sel.WithFacilityToggled("B")
	if sel.Facility != "B" {
		t.Errorf("Selecting another facility should switch, got %q", sel.Facility)
	}
	sel = sel.WithFacilityToggled("B")
	if sel.Facility != "" {
		t.Errorf("Selecting the active facility should clear it, got %q", sel.Facility)
	}

	sel = sel.WithCategoryToggled("Medical").WithSpecialtyToggled("Cardiology")
	if sel.SpecialtyCategory != "Medical" || sel.Specialty != "Cardiology" {
		t.Errorf("Unexpected selection %+v", sel)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []WeekLabel
		want []WeekLabel
	}{
		{"Empty", nil, []WeekLabel{WeekAll}},
		{"Duplicates", []WeekLabel{"3", "2", "3"}, []WeekLabel{"3", "2"}},
		{"AllWithNumbers", []WeekLabel{"2", WeekAll}, []WeekLabel{WeekAll}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSelection{Weeks: tt.in}.Normalize()
			if !reflect.DeepEqual(got.Weeks, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got.Weeks)
			}
		})
	}
}

func TestParseWeekLabel(t *testing.T) {
	for in, want := range map[string]WeekLabel{
		"":      WeekAll,
		"All":   WeekAll,
		"Todas": WeekAll,
		"1":     "1",
		" 5 ":   "5",
		"03":    "3",
	} {
		got, err := ParseWeekLabel(in)
		if err != nil || got != want {
			t.Errorf("ParseWeekLabel(%q) = (%q, %v), want %q", in, got, err, want)
		}
	}

	for _, in := range []string{"0", "6", "week"} {
		if _, err := ParseWeekLabel(in); !errors.Is(err, ErrInvalidWeek) {
			t.Errorf("ParseWeekLabel(%q) should fail with ErrInvalidWeek, got %v", in, err)
		}
	}
}

func TestSingleWeek(t *testing.T) {
	if w, ok := (FilterSelection{Weeks: []WeekLabel{"4"}}).SingleWeek(); !ok || w != 4 {
		t.Errorf("Expected week 4, got (%d, %v)", w, ok)
	}
	if _, ok := DefaultSelection().SingleWeek(); ok {
		t.Error("All should not be a single week")
	}
	if _, ok := (FilterSelection{Weeks: []WeekLabel{"1", "2"}}).SingleWeek(); ok {
		t.Error("Two weeks should not be a single week")
	}
}

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection(" Unit A ", "", "Cardiology", []string{"3,1", "3", " "})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sel.Facility != "Unit A" || sel.Specialty != "Cardiology" || sel.SpecialtyCategory != "" {
		t.Errorf("Unexpected dimensions: %+v", sel)
	}
	if len(sel.Weeks) != 2 || sel.Weeks[0] != "3" || sel.Weeks[1] != "1" {
		t.Errorf("Expected weeks [3 1], got %v", sel.Weeks)
	}

	sel, err = ParseSelection("", "", "", nil)
	if err != nil || !sel.HasAllWeeks() {
		t.Errorf("Expected All for no weeks, got %v (%v)", sel.Weeks, err)
	}

	sel, err = ParseSelection("", "", "", []string{"2,todas"})
	if err != nil || len(sel.Weeks) != 1 || sel.Weeks[0] != WeekAll {
		t.Errorf("Expected All to win, got %v (%v)", sel.Weeks, err)
	}

	if _, err := ParseSelection("", "", "", []string{"6"}); !errors.Is(err, ErrInvalidWeek) {
		t.Errorf("Expected ErrInvalidWeek, got %v", err)
	}
}

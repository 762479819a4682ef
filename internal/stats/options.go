package stats

import "slices"

// Options lists the distinct filter values of the dataset. Specialties are restricted to
// category when it is set.
func Options(records []Record, category string) FilterOptions {
	facilities := make(map[string]bool)
	categories := make(map[string]bool)
	specialties := make(map[string]bool)

	for _, r := range records {
		facilities[r.Facility] = true
		categories[r.SpecialtyCategory] = true
		if category == "" || r.SpecialtyCategory == category {
			specialties[r.Specialty] = true
		}
	}

	return FilterOptions{
		Facilities:  sortedKeys(facilities),
		Categories:  sortedKeys(categories),
		Specialties: sortedKeys(specialties),
		Weeks:       WeekLabels(),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

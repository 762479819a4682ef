package stats

import (
	"sort"
	"strings"
)

// ProfessionalLimit caps the professional ranking.
const ProfessionalLimit = 10

// KeyFunc extracts the grouping key of a record.
type KeyFunc func(Record) string

// BySpecialty groups records by specialty.
func BySpecialty(r Record) string { return r.Specialty }

// ByProfessional groups records by professional.
func ByProfessional(r Record) string { return r.Professional }

// GroupBy tallies the view per key. Groups come out in order of first appearance.
func GroupBy(view []Record, key KeyFunc) []GroupBreakdown {
	index := make(map[string]int)
	names := make([]string, 0)
	tallies := make([]tally, 0)

	for _, r := range view {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(names)
			index[k] = i
			names = append(names, k)
			tallies = append(tallies, tally{})
		}
		tallies[i].add(r)
	}

	groups := make([]GroupBreakdown, len(names))
	for i, name := range names {
		t := tallies[i]
		groups[i] = GroupBreakdown{
			Name:            name,
			Total:           t.total,
			Scheduled:       t.scheduled,
			Completed:       t.completed,
			Absent:          t.absent,
			Pending:         t.pending(),
			Free:            t.free,
			Blocked:         t.blocked,
			OccupancyRate:   t.occupancy(),
			AbsenteeismRate: t.absenteeism(),
		}
	}
	return groups
}

// SpecialtyBreakdown tallies the view per specialty and orders it by spec.
func SpecialtyBreakdown(view []Record, spec SortSpec) []GroupBreakdown {
	groups := GroupBy(view, BySpecialty)
	SortGroups(groups, spec)
	return groups
}

// ProfessionalRanking lists the professionals with scheduled activity, most completed first.
func ProfessionalRanking(view []Record) []ProfessionalBreakdown {
	groups := GroupBy(view, ByProfessional)

	ranked := make([]ProfessionalBreakdown, 0, len(groups))
	for _, g := range groups {
		if g.Scheduled == 0 {
			continue
		}
		ranked = append(ranked, ProfessionalBreakdown{
			GroupBreakdown: g,
			ShortName:      ShortName(g.Name),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Completed > ranked[j].Completed
	})

	if len(ranked) > ProfessionalLimit {
		ranked = ranked[:ProfessionalLimit]
	}
	return ranked
}

// ShortName keeps the first and last words of a name ("Ana Maria Souza" -> "Ana Souza").
func ShortName(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return strings.TrimSpace(name)
	}
	return parts[0] + " " + parts[len(parts)-1]
}

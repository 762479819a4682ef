package dataset

import (
	"strings"

	"agendas-mcp/internal/stats"
)

// Vocabulary maps the raw status values of a dataset onto the canonical ones. Lookups are
// case-insensitive and ignore surrounding spaces; unknown values are returned unchanged so
// the aggregators leave them untallied.
type Vocabulary struct {
	SlotStates map[string]string
	Outcomes   map[string]string
}

// DefaultVocabulary understands the Portuguese export and the canonical English values.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		SlotStates: map[string]string{
			"agendado":  stats.SlotScheduled,
			"livre":     stats.SlotFree,
			"bloqueado": stats.SlotBlocked,
			"scheduled": stats.SlotScheduled,
			"free":      stats.SlotFree,
			"blocked":   stats.SlotBlocked,
		},
		Outcomes: map[string]string{
			"realizado": stats.OutcomeCompleted,
			"ausente":   stats.OutcomeAbsent,
			"completed": stats.OutcomeCompleted,
			"absent":    stats.OutcomeAbsent,
		},
	}
}

// SlotState returns the canonical slot state for raw.
func (v Vocabulary) SlotState(raw string) string {
	return lookup(v.SlotStates, raw)
}

// Outcome returns the canonical outcome for raw.
func (v Vocabulary) Outcome(raw string) string {
	return lookup(v.Outcomes, raw)
}

func lookup(m map[string]string, raw string) string {
	if canonical, ok := m[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return canonical
	}
	return raw
}

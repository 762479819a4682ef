package tui

import (
	"context"
	"errors"
	"testing"

	"agendas-mcp/internal/stats"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	records   []stats.Record
	err       error
	reloadErr error
	reloads   int
}

func (f *fakeSource) Snapshot() ([]stats.Record, error) { return f.records, f.err }

func (f *fakeSource) Reload(context.Context) error {
	f.reloads++
	return f.reloadErr
}

func record(facility, category, specialty, state, date string) stats.Record {
	return stats.Record{
		Facility:          facility,
		Professional:      "Ana Souza",
		Specialty:         specialty,
		SpecialtyCategory: category,
		SlotState:         state,
		CalendarDate:      date,
	}
}

func testRecords() []stats.Record {
	return []stats.Record{
		record("Unit A", "Medical", "Cardiology", stats.SlotScheduled, "2026-03-02"),
		record("Unit A", "Medical", "Pediatrics", stats.SlotFree, "2026-03-09"),
		record("Unit B", "Multi", "Psychology", stats.SlotBlocked, "2026-03-16"),
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ready runs Init and feeds its message back, as the program loop would.
func ready(t *testing.T, src Source) Model {
	t.Helper()
	m := NewModel(context.Background(), src)
	msg := m.Init()()
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(runes(k))
		m = next.(Model)
	}
	return m
}

func TestModel_LoadsDashboard(t *testing.T) {
	m := ready(t, &fakeSource{records: testRecords()})

	assert.False(t, m.loading)
	assert.NoError(t, m.err)
	assert.Equal(t, 3, m.dashboard.KPIs.Total)
	assert.Contains(t, m.View(), "Schedule Dashboard")
}

func TestModel_NotReady(t *testing.T) {
	m := ready(t, &fakeSource{err: errors.New("dataset not ready: failed")})

	require.Error(t, m.err)
	view := m.View()
	assert.Contains(t, view, "Dataset unavailable")
	assert.Contains(t, view, "Press r to retry")

	// Filter keys are ignored without data.
	m = press(m, "f")
	assert.Equal(t, stats.DefaultSelection(), m.Selection())
}

func TestModel_WeekToggles(t *testing.T) {
	m := ready(t, &fakeSource{records: testRecords()})

	m = press(m, "2")
	assert.Equal(t, []stats.WeekLabel{"2"}, m.Selection().Weeks)
	assert.Equal(t, 1, m.dashboard.KPIs.Total)
	require.NotNil(t, m.dashboard.Comparison)

	m = press(m, "3")
	assert.Equal(t, []stats.WeekLabel{"2", "3"}, m.Selection().Weeks)
	assert.Nil(t, m.dashboard.Comparison)

	m = press(m, "2", "3")
	assert.Equal(t, []stats.WeekLabel{stats.WeekAll}, m.Selection().Weeks)

	m = press(m, "4", "a")
	assert.Equal(t, []stats.WeekLabel{stats.WeekAll}, m.Selection().Weeks)
}

func TestModel_CycleFacility(t *testing.T) {
	m := ready(t, &fakeSource{records: testRecords()})

	m = press(m, "f")
	assert.Equal(t, "Unit A", m.Selection().Facility)
	assert.Equal(t, 2, m.dashboard.KPIs.Total)

	m = press(m, "f")
	assert.Equal(t, "Unit B", m.Selection().Facility)

	m = press(m, "f")
	assert.Empty(t, m.Selection().Facility)
	assert.Equal(t, 3, m.dashboard.KPIs.Total)
}

func TestModel_CategoryClearsForeignSpecialty(t *testing.T) {
	m := ready(t, &fakeSource{records: testRecords()})

	m = press(m, "s")
	assert.Equal(t, "Cardiology", m.Selection().Specialty)

	// Categories sort as Medical, Multi: the second press leaves Cardiology's category.
	m = press(m, "c")
	assert.Equal(t, "Medical", m.Selection().SpecialtyCategory)
	assert.Equal(t, "Cardiology", m.Selection().Specialty)

	m = press(m, "c")
	assert.Equal(t, "Multi", m.Selection().SpecialtyCategory)
	assert.Empty(t, m.Selection().Specialty)

	m = press(m, "x")
	assert.Equal(t, stats.DefaultSelection(), m.Selection())
}

func TestModel_Sort(t *testing.T) {
	m := ready(t, &fakeSource{records: testRecords()})
	assert.Equal(t, stats.DefaultSort(), m.Sort())

	m = press(m, "O")
	assert.Equal(t, stats.SortSpec{Key: stats.SortTotal, Direction: stats.Asc}, m.Sort())

	m = press(m, "o")
	assert.Equal(t, stats.SortSpec{Key: stats.SortScheduled, Direction: stats.Desc}, m.Sort())
	assert.Equal(t, m.Sort(), m.dashboard.Sort)
}

func TestModel_Reload(t *testing.T) {
	src := &fakeSource{records: testRecords()}
	m := ready(t, src)

	next, cmd := m.Update(runes("r"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Contains(t, m.View(), "Reloading")

	next, cmd = m.Update(cmd())
	m = next.(Model)
	require.NotNil(t, cmd)
	src.records = testRecords()[:1]
	next, _ = m.Update(cmd())
	m = next.(Model)

	assert.Equal(t, 1, src.reloads)
	assert.False(t, m.loading)
	assert.Equal(t, 1, m.dashboard.KPIs.Total)

	src.reloadErr = errors.New("boom")
	next, cmd = m.Update(runes("r"))
	next, _ = next.(Model).Update(cmd())
	m = next.(Model)
	assert.Contains(t, m.View(), "Reload failed: boom")
	assert.Equal(t, 1, m.dashboard.KPIs.Total)
}

func TestModel_Quit(t *testing.T) {
	m := ready(t, &fakeSource{records: testRecords()})
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

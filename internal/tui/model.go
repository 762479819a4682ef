package tui

import (
	"context"
	"slices"
	"strings"

	"agendas-mcp/internal/stats"
	"agendas-mcp/internal/visuals"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Source is the part of the dataset store the dashboard reads from.
type Source interface {
	Snapshot() ([]stats.Record, error)
	Reload(ctx context.Context) error
}

type snapshotMsg struct {
	records []stats.Record
	err     error
}

type reloadedMsg struct {
	err error
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

// Model is the interactive dashboard. Every key press recomputes the dashboard from the
// loaded records; the records themselves are never modified.
type Model struct {
	ctx    context.Context
	source Source
	keys   KeyMap
	help   help.Model

	records   []stats.Record
	sel       stats.FilterSelection
	sort      stats.SortSpec
	dashboard stats.Dashboard

	loading bool
	err     error
}

// NewModel creates a dashboard over source with the default filters and sort.
func NewModel(ctx context.Context, source Source) Model {
	return Model{
		ctx:     ctx,
		source:  source,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		sel:     stats.DefaultSelection(),
		sort:    stats.DefaultSort(),
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetch()
}

func (m Model) fetch() tea.Cmd {
	return func() tea.Msg {
		records, err := m.source.Snapshot()
		return snapshotMsg{records: records, err: err}
	}
}

func (m Model) reload() tea.Cmd {
	return func() tea.Msg {
		return reloadedMsg{err: m.source.Reload(m.ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.records = msg.records
			if m.records == nil {
				m.records = []stats.Record{}
			}
			m.recompute()
		}
		return m, nil

	case reloadedMsg:
		if msg.err != nil {
			m.loading = false
			m.err = msg.err
			return m, nil
		}
		return m, m.fetch()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, m.reload()
	}

	if m.records == nil {
		return m, nil
	}

	opts := stats.Options(m.records, m.sel.SpecialtyCategory)
	switch {
	case key.Matches(msg, m.keys.AllWeeks):
		m.sel = m.sel.WithWeekToggled(stats.WeekAll)
	case key.Matches(msg, m.keys.Week):
		if label, err := stats.ParseWeekLabel(msg.String()); err == nil {
			m.sel = m.sel.WithWeekToggled(label)
		}
	case key.Matches(msg, m.keys.Facility):
		m.sel = cycle(m.sel, m.sel.Facility, opts.Facilities, stats.FilterSelection.WithFacilityToggled)
	case key.Matches(msg, m.keys.Category):
		m.sel = cycle(m.sel, m.sel.SpecialtyCategory, opts.Categories, stats.FilterSelection.WithCategoryToggled)
		// A specialty outside the new category would filter everything out.
		if m.sel.Specialty != "" {
			valid := stats.Options(m.records, m.sel.SpecialtyCategory).Specialties
			if !slices.Contains(valid, m.sel.Specialty) {
				m.sel = m.sel.WithSpecialtyToggled(m.sel.Specialty)
			}
		}
	case key.Matches(msg, m.keys.Specialty):
		m.sel = cycle(m.sel, m.sel.Specialty, opts.Specialties, stats.FilterSelection.WithSpecialtyToggled)
	case key.Matches(msg, m.keys.Clear):
		m.sel = stats.DefaultSelection()
	case key.Matches(msg, m.keys.Sort):
		m.sort = stats.ToggleSort(m.sort, nextSortKey(m.sort.Key))
	case key.Matches(msg, m.keys.SortFlip):
		m.sort = stats.ToggleSort(m.sort, m.sort.Key)
	default:
		return m, nil
	}

	m.recompute()
	return m, nil
}

func (m *Model) recompute() {
	m.dashboard = stats.BuildDashboard(m.records, m.sel, m.sort)
}

// cycle moves a dimension to the value after current, and back to unfiltered after the last one.
func cycle(sel stats.FilterSelection, current string, values []string, toggled func(stats.FilterSelection, string) stats.FilterSelection) stats.FilterSelection {
	if len(values) == 0 {
		return sel
	}
	idx := slices.Index(values, current)
	switch {
	case current == "":
		return toggled(sel, values[0])
	case idx == len(values)-1 || idx < 0:
		return toggled(sel, current)
	default:
		return toggled(sel, values[idx+1])
	}
}

func nextSortKey(current stats.SortKey) stats.SortKey {
	keys := stats.SortKeys()
	idx := slices.Index(keys, current)
	return keys[(idx+1)%len(keys)]
}

func (m Model) View() string {
	var sb strings.Builder

	if m.records == nil {
		if m.loading {
			sb.WriteString(statusStyle.Render("Loading dataset..."))
		} else if m.err != nil {
			sb.WriteString(errorStyle.Render("Dataset unavailable: " + m.err.Error()))
			sb.WriteString("\n")
			sb.WriteString(statusStyle.Render("Press r to retry."))
		}
		sb.WriteString("\n")
	} else {
		if err := visuals.WriteReport(&sb, m.dashboard); err != nil {
			sb.WriteString(errorStyle.Render(err.Error()))
		}
		switch {
		case m.loading:
			sb.WriteString(statusStyle.Render("Reloading..."))
			sb.WriteString("\n")
		case m.err != nil:
			sb.WriteString(errorStyle.Render("Reload failed: " + m.err.Error()))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return sb.String()
}

// Selection returns the active filters.
func (m Model) Selection() stats.FilterSelection { return m.sel }

// Sort returns the active specialty sort.
func (m Model) Sort() stats.SortSpec { return m.sort }

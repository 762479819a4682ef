package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard shortcuts.
type KeyMap struct {
	AllWeeks key.Binding
	Week     key.Binding // 1-5 toggle a week

	Facility  key.Binding
	Category  key.Binding
	Specialty key.Binding
	Clear     key.Binding

	Sort     key.Binding
	SortFlip key.Binding

	Reload key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AllWeeks: key.NewBinding(
			key.WithKeys("a", "0"),
			key.WithHelp("a", "all weeks"),
		),
		Week: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "toggle week"),
		),
		Facility: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "next facility"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "next category"),
		),
		Specialty: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next specialty"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "next sort column"),
		),
		SortFlip: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "flip sort"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.AllWeeks, k.Week, k.Facility, k.Category, k.Specialty,
		k.Clear, k.Sort, k.SortFlip, k.Reload, k.Quit,
	}
}

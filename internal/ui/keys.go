package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Navigation
	Next   key.Binding
	Prev   key.Binding
	Random key.Binding

	// Card
	Reveal     key.Binding
	HideMode   key.Binding
	Copy       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// Filtering
	Search      key.Binding
	Topic       key.Binding
	ClearFilter key.Binding

	// Progress
	Reset key.Binding

	// Global
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "down", "l", "j", " ", "space", "enter"),
			key.WithHelp("→/space", "Next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "up", "h", "k"),
			key.WithHelp("←", "Previous"),
		),
		// к is r on a Russian layout.
		Random: key.NewBinding(
			key.WithKeys("r", "R", "к", "К"),
			key.WithHelp("r", "Random"),
		),

		Reveal: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Show/hide answer"),
		),
		HideMode: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "Toggle hidden answers"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Copy answer"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Scroll down"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Topic: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Next topic"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear filter"),
		),

		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Reset progress"),
		),

		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Random, k.Search, k.Topic, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Random, k.ScrollUp, k.ScrollDown},
		{k.Reveal, k.HideMode, k.Copy},
		{k.Search, k.Topic, k.ClearFilter},
		{k.Reset, k.CycleTheme, k.Help, k.Quit},
	}
}

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.searching = true
	m.search.CursorEnd()
	return m, m.search.Focus()
}

// handleSearchKey feeds the search field. Every edit re-applies the filter so
// the card follows the text as it is typed.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.clearFilter()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	next, filterCmd := m.applyFilter()
	return next, tea.Batch(cmd, filterCmd)
}

// applyFilter runs the search text and topic choice through the session. When
// nothing matches the display is left as it was and a notice is shown.
func (m Model) applyFilter() (tea.Model, tea.Cmd) {
	if !m.session.Apply(m.search.Value(), m.topicChoice) {
		m.refreshCard()
		return m.setStatus("No matching questions")
	}
	return m.afterNavigate()
}

// clearFilter empties both controls and returns to the full deck.
func (m *Model) clearFilter() {
	m.search.SetValue("")
	m.topicChoice = ""
	m.session.Clear()
	m.refreshCard()
}

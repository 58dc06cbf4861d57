package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const resetPrompt = "Reset all study progress?"

func newResetForm(value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(resetPrompt).
				Description("Studied questions and the saved position will be forgotten.").
				Affirmative("Yes").
				Negative("No").
				Value(value),
		),
	).WithShowHelp(false).WithWidth(48)
}

// openConfirm opens the reset gate. The tracker is untouched until the form
// completes with an explicit yes.
func (m Model) openConfirm() (tea.Model, tea.Cmd) {
	m.session.RequestReset()
	value := false
	m.confirmValue = &value
	m.confirm = newResetForm(m.confirmValue)
	return m, m.confirm.Init()
}

// updateConfirm forwards messages to the form and closes the gate when it
// finishes. Esc and an aborted form count as "no".
func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return m.finishConfirm(false)
	}

	model, cmd := m.confirm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.confirm = form
	}

	switch m.confirm.State {
	case huh.StateCompleted:
		next, statusCmd := m.finishConfirm(*m.confirmValue)
		return next, tea.Batch(cmd, statusCmd)
	case huh.StateAborted:
		return m.finishConfirm(false)
	}
	return m, cmd
}

func (m Model) finishConfirm(yes bool) (tea.Model, tea.Cmd) {
	m.confirm = nil
	m.confirmValue = nil
	if !m.session.ConfirmReset(yes) {
		return m, nil
	}
	m.refreshCard()
	return m.setStatus("Progress reset")
}

func (m Model) renderConfirm() string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.Styles().Modal.Render(m.confirm.View()),
		lipgloss.WithWhitespaceChars(" "),
	)
}

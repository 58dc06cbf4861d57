package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cram/internal/prefs"
)

// swipeState tracks a horizontal mouse drag between press and release.
type swipeState struct {
	active bool
	startX int
	last   time.Time
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// Nothing but quitting makes sense until the deck is usable.
	if m.loading || m.loadErr != nil || m.session == nil {
		if key.Matches(msg, m.keys.Quit) || msg.String() == "esc" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.session.Next()
		return m.afterNavigate()

	case key.Matches(msg, m.keys.Prev):
		m.session.Prev()
		return m.afterNavigate()

	case key.Matches(msg, m.keys.Random):
		m.session.Random()
		return m.afterNavigate()

	case key.Matches(msg, m.keys.Search):
		return m.startSearch()

	case key.Matches(msg, m.keys.Topic):
		m.topicChoice = m.session.NextTopic(m.topicChoice)
		return m.applyFilter()

	case key.Matches(msg, m.keys.ClearFilter):
		if m.session.Filtered() || m.search.Value() != "" || m.topicChoice != "" {
			m.clearFilter()
		}
		return m, nil

	case key.Matches(msg, m.keys.Reveal):
		m.revealed = !m.revealed
		m.refreshCard()
		return m, nil

	case key.Matches(msg, m.keys.HideMode):
		m.prefs.HideAnswers = !m.prefs.HideAnswers
		m.revealed = false
		m.refreshCard()
		return m, m.savePrefs()

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyAnswerCmd()

	case key.Matches(msg, m.keys.ScrollUp):
		m.card.SetYOffset(m.card.YOffset - maxInt(1, m.card.Height/2))
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.card.SetYOffset(m.card.YOffset + maxInt(1, m.card.Height/2))
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		return m.openConfirm()

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(GetTheme(NextTheme(m.theme.Name)))
		m.prefs.Theme = m.theme.Name
		return m, m.savePrefs()
	}

	return m, nil
}

// handleMouse turns a horizontal drag into navigation: leftward moves to the
// next card, rightward to the previous one. Drags shorter than the configured
// threshold and repeats inside SwipeCooldown are ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.session == nil || m.searching || m.showHelp {
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.swipe.active = true
		m.swipe.startX = msg.X
		return m, nil

	case msg.Action == tea.MouseActionRelease:
		if !m.swipe.active {
			return m, nil
		}
		m.swipe.active = false
		dx := msg.X - m.swipe.startX
		if absInt(dx) < m.cfg.SwipeThreshold {
			return m, nil
		}
		now := m.now()
		if !m.swipe.last.IsZero() && now.Sub(m.swipe.last) < SwipeCooldown {
			return m, nil
		}
		m.swipe.last = now
		if dx < 0 {
			m.session.Next()
		} else {
			m.session.Prev()
		}
		return m.afterNavigate()

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		m.card.SetYOffset(m.card.YOffset - 1)
		return m, nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		m.card.SetYOffset(m.card.YOffset + 1)
		return m, nil
	}
	return m, nil
}

// afterNavigate re-renders and fires the presentation side effects of a move.
func (m Model) afterNavigate() (tea.Model, tea.Cmd) {
	m.revealed = false
	m.refreshCard()
	m.card.GotoTop()

	var cmds []tea.Cmd
	if m.caps.Bell {
		cmds = append(cmds, bellCmd())
	}
	if cmd := m.maybeFadeHint(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// quit saves the current position before leaving, like a page unload.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.session != nil {
		m.session.SaveNow()
	}
	return m, tea.Quit
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	m.bar = newProgressBar(t)
	m.bar.Width = m.barWidth()
	m.refreshCard()
}

func (m Model) savePrefs() tea.Cmd {
	path := m.prefsPath
	p := m.prefs
	return func() tea.Msg {
		if err := prefs.Save(path, p); err != nil {
			log.Printf("save prefs: %v", err)
		}
		return nil
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

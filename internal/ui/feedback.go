package ui

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Capabilities are resolved once at startup; features missing on the current
// terminal are skipped rather than emulated.
type Capabilities struct {
	Bell      bool // terminal bell as a short "haptic" pulse
	Mouse     bool // mouse reporting for swipe gestures
	Clipboard bool
}

// DetectCapabilities probes stdout and the clipboard backend.
func DetectCapabilities() Capabilities {
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	return Capabilities{
		Bell:      tty,
		Mouse:     tty,
		Clipboard: !clipboard.Unsupported,
	}
}

type hintState int

const (
	hintHidden hintState = iota
	hintVisible
	hintFading
)

// maybeFadeHint starts fading the navigation hint once enough questions have
// been studied.
func (m *Model) maybeFadeHint() tea.Cmd {
	if m.hint != hintVisible || m.session == nil {
		return nil
	}
	if m.session.Tracker().Count() < m.cfg.HintThreshold {
		return nil
	}
	m.hint = hintFading
	return tea.Tick(HintFadeDelay, func(time.Time) tea.Msg { return hintFadeMsg{} })
}

func (m Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	seq := m.statusSeq
	return m, tea.Tick(StatusTTL, func(time.Time) tea.Msg { return statusClearMsg(seq) })
}

func bellCmd() tea.Cmd {
	return func() tea.Msg {
		fmt.Fprint(os.Stderr, "\a")
		return nil
	}
}

func (m Model) copyAnswerCmd() tea.Cmd {
	q, ok := m.session.Current()
	if !ok {
		return nil
	}
	if !m.caps.Clipboard {
		return func() tea.Msg { return statusMsg("Clipboard unavailable") }
	}
	answer := q.Answer
	return func() tea.Msg {
		if err := clipboard.WriteAll(answer); err != nil {
			log.Printf("copy answer: %v", err)
			return statusMsg("Copy failed")
		}
		return statusMsg("Answer copied")
	}
}

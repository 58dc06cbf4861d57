package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cram/internal/session"
)

// markdownCache keeps one glamour renderer per wrap width and style.
type markdownCache struct {
	renderer *glamour.TermRenderer
	width    int
	style    string
}

func (c *markdownCache) render(text string, width int, style string) string {
	if width < 10 {
		width = 10
	}
	if c.renderer == nil || c.width != width || c.style != style {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return lipgloss.NewStyle().Width(width).Render(text)
		}
		c.renderer, c.width, c.style = r, width, style
	}
	out, err := c.renderer.Render(text)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(text)
	}
	return strings.Trim(out, "\n")
}

func newProgressBar(t Theme) progress.Model {
	return progress.New(
		progress.WithGradient(t.BarFrom, t.BarTo),
		progress.WithoutPercentage(),
	)
}

func (m Model) cardWidth() int {
	w := m.width - 2
	if w > LayoutMaxCardWidth {
		w = LayoutMaxCardWidth
	}
	return maxInt(w, 20)
}

func (m Model) barWidth() int {
	return maxInt(m.cardWidth()-8, 10)
}

// resize lays the card out for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	inner := m.cardWidth() - 4 // border + padding
	h := maxInt(height-chromeHeight, 3)
	if m.card.Width == 0 {
		m.card = viewport.New(inner, h)
	} else {
		m.card.Width = inner
		m.card.Height = h
	}
	m.bar.Width = m.barWidth()
	m.refreshCard()
}

// refreshCard recomputes the card body from the session projection.
func (m *Model) refreshCard() {
	if m.session == nil || m.card.Width == 0 {
		return
	}
	m.card.SetContent(m.cardBody(m.session.View()))
}

func (m Model) cardBody(v session.Projection) string {
	styles := m.theme.Styles()
	if !v.HasQuestion {
		return styles.MutedText.Render("No questions to show.")
	}

	var b strings.Builder
	heading := fmt.Sprintf("%d. %s", v.Question.ID, v.Question.Question)
	b.WriteString(styles.Text.Bold(true).Width(m.card.Width).Render(heading))
	b.WriteString("\n")
	if v.Question.Topic != "" {
		b.WriteString(styles.AccentText.Render(truncate(v.Question.Topic, m.card.Width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.prefs.HideAnswers && !m.revealed {
		b.WriteString(styles.FaintText.Render("Answer hidden. Press a to reveal."))
		return b.String()
	}
	b.WriteString(m.md.render(v.Question.Answer, m.card.Width, m.theme.Markdown))
	return b.String()
}

// renderMain renders the full study screen.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	v := m.session.View()

	var b strings.Builder
	b.WriteString(m.renderHeader(v))
	b.WriteString("\n")

	b.WriteString(" ")
	b.WriteString(m.bar.ViewAs(v.Percent / 100))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf(" %3.0f%%", v.Percent)))
	b.WriteString("\n")

	card := styles.Card
	if v.IsStudied {
		card = styles.CardStudied
	}
	b.WriteString(card.Width(m.cardWidth()).Render(m.card.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStats(v))
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine(v))
	b.WriteString("\n")
	b.WriteString(styles.Footer.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderHeader(v session.Projection) string {
	styles := m.theme.Styles()
	counter := fmt.Sprintf("Question %d of %d", v.Number, v.Total)
	if m.width < LayoutCompactWidth {
		counter = fmt.Sprintf("%d/%d", v.Number, v.Total)
	}
	parts := []string{styles.Logo.Render("cram"), styles.Text.Render(counter)}
	if v.Topic != "" {
		parts = append(parts, styles.AccentText.Render(truncate(v.Topic, 24)))
	}
	return styles.Header.Render(strings.Join(parts, "  "))
}

func (m Model) renderStats(v session.Projection) string {
	styles := m.theme.Styles()
	parts := []string{styles.MutedText.Render("Studied: ") + styles.SuccessText.Render(fmt.Sprint(v.Studied))}
	if v.IsStudied {
		parts = append(parts, styles.SuccessText.Render("✓ studied"))
	}
	switch m.hint {
	case hintVisible:
		parts = append(parts, styles.WarningText.Render(navigationHint(m.caps)))
	case hintFading:
		parts = append(parts, styles.FaintText.Render(navigationHint(m.caps)))
	}
	return " " + strings.Join(parts, "  ")
}

func navigationHint(caps Capabilities) string {
	if caps.Mouse {
		return "← → or swipe to navigate"
	}
	return "← → to navigate"
}

func (m Model) renderFilterLine(v session.Projection) string {
	styles := m.theme.Styles()
	var parts []string
	switch {
	case m.searching:
		parts = append(parts, m.search.View())
	case v.Query != "":
		parts = append(parts, styles.MutedText.Render("search: ")+styles.Text.Render(truncate(v.Query, 30)))
	}
	topic := "all topics"
	if m.topicChoice != "" {
		topic = m.topicChoice
	}
	parts = append(parts, styles.MutedText.Render("topic: ")+styles.AccentText.Render(truncate(topic, 24)))
	if m.status != "" {
		parts = append(parts, styles.WarningText.Render(m.status))
	}
	return " " + strings.Join(parts, "  ")
}

func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		styles.MutedText.Render("Loading questions..."))
}

// renderLoadError is the permanent degraded display after a failed load.
func (m Model) renderLoadError() string {
	styles := m.theme.Styles()
	width := maxInt(minInt(m.width-6, 72), 20)
	body := strings.Join([]string{
		styles.DangerText.Render("Could not load questions"),
		"",
		styles.Text.Width(width).Render(m.loadErr.Error()),
		"",
		styles.MutedText.Render("Check data_source in your config, then restart. Press q to quit."),
	}, "\n")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		styles.Modal.BorderForeground(lipgloss.Color(m.theme.Danger)).Render(body))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cram/internal/config"
	"github.com/five82/cram/internal/deck"
	"github.com/five82/cram/internal/prefs"
	studyprogress "github.com/five82/cram/internal/progress"
)

func sampleDeck() deck.Deck {
	return deck.New([]deck.Question{
		{ID: 1, Question: "What is a goroutine?", Answer: "A lightweight thread.", Topic: "A"},
		{ID: 2, Question: "What is a channel?", Answer: "A typed conduit.", Topic: "B"},
		{ID: 3, Question: "What does defer do?", Answer: "Runs at function exit.", Topic: "A"},
	})
}

type fixture struct {
	m   Model
	kv  *studyprogress.MemoryKV
	now time.Time
}

func newFixture(t *testing.T, d deck.Deck) *fixture {
	t.Helper()
	f := &fixture{kv: studyprogress.NewMemoryKV(), now: time.Unix(1_700_000_000, 0)}
	cfg := config.Default()
	cfg.SwipeThreshold = 5
	cfg.HintThreshold = 2
	f.m = New(Options{
		Tracker:   studyprogress.NewTracker(f.kv),
		Config:    cfg,
		Prefs:     prefs.Defaults(),
		PrefsPath: t.TempDir() + "/prefs.toml",
		Now:       func() time.Time { return f.now },
	})
	f.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	f.send(deckLoadedMsg{deck: d})
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.m.Update(msg)
	f.m = next.(Model)
	return cmd
}

func (f *fixture) key(s string) tea.Cmd {
	switch s {
	case "right":
		return f.send(tea.KeyMsg{Type: tea.KeyRight})
	case "left":
		return f.send(tea.KeyMsg{Type: tea.KeyLeft})
	case "space":
		return f.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	case "enter":
		return f.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return f.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "backspace":
		return f.send(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	return f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (f *fixture) currentID(t *testing.T) int {
	t.Helper()
	q, ok := f.m.Session().Current()
	if !ok {
		t.Fatalf("no current question")
	}
	return q.ID
}

func TestView_BeforeLoadShowsLoading(t *testing.T) {
	m := New(Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	if got := next.View(); !strings.Contains(got, "Loading questions") {
		t.Fatalf("View = %q, want loading message", got)
	}
}

func TestKeysIgnoredUntilLoaded(t *testing.T) {
	m := New(Options{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if cmd != nil {
		t.Fatalf("navigation before load returned a command")
	}
	if next.(Model).Session() != nil {
		t.Fatalf("session exists before load")
	}
}

func TestLoadError_PermanentDegradedView(t *testing.T) {
	m := New(Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	loadErr := &deck.LoadError{Source: "data.json", Err: errors.New("no such file")}
	next, _ = next.Update(deckLoadedMsg{err: loadErr})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRight})

	view := next.View()
	if !strings.Contains(view, "Could not load questions") {
		t.Fatalf("View = %q, want load error", view)
	}
	if next.(Model).Session() != nil {
		t.Fatalf("session created despite load error")
	}
}

func TestView_ShowsCounterAndQuestion(t *testing.T) {
	f := newFixture(t, sampleDeck())
	view := f.m.View()
	for _, want := range []string{"Question 1 of 3", "1. What is a goroutine?", "Studied: 0"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q:\n%s", want, view)
		}
	}
}

func TestView_EmptyDeck(t *testing.T) {
	f := newFixture(t, deck.New(nil))
	f.key("right")
	f.key("r")
	view := f.m.View()
	if !strings.Contains(view, "Question 0 of 0") {
		t.Fatalf("View missing zero counter:\n%s", view)
	}
	if !strings.Contains(view, "No questions to show") {
		t.Fatalf("View missing empty card:\n%s", view)
	}
}

func TestKeys_Navigate(t *testing.T) {
	f := newFixture(t, sampleDeck())

	f.key("right")
	if id := f.currentID(t); id != 2 {
		t.Fatalf("after right: id %d, want 2", id)
	}
	f.key("space")
	if id := f.currentID(t); id != 3 {
		t.Fatalf("after space: id %d, want 3", id)
	}
	f.key("enter")
	if id := f.currentID(t); id != 1 {
		t.Fatalf("after enter: id %d, want 1 (wrap)", id)
	}
	f.key("left")
	if id := f.currentID(t); id != 3 {
		t.Fatalf("after left: id %d, want 3", id)
	}
	if got := f.m.Session().Tracker().Count(); got != 3 {
		t.Fatalf("studied = %d, want 3", got)
	}
}

func TestKeys_RandomVariants(t *testing.T) {
	for _, k := range []string{"r", "R", "к"} {
		t.Run(k, func(t *testing.T) {
			f := newFixture(t, sampleDeck())
			before := f.currentID(t)
			f.key(k)
			if f.currentID(t) == before {
				t.Fatalf("%q did not move to a different question", k)
			}
		})
	}
}

func TestSwipe(t *testing.T) {
	f := newFixture(t, sampleDeck())

	drag := func(from, to int) {
		f.send(tea.MouseMsg{X: from, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		f.send(tea.MouseMsg{X: to, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	}

	drag(40, 30)
	if id := f.currentID(t); id != 2 {
		t.Fatalf("leftward swipe: id %d, want 2", id)
	}

	// Repeat inside the cooldown is ignored.
	f.now = f.now.Add(100 * time.Millisecond)
	drag(40, 30)
	if id := f.currentID(t); id != 2 {
		t.Fatalf("rapid repeat swipe moved to %d", id)
	}

	f.now = f.now.Add(time.Second)
	drag(30, 40)
	if id := f.currentID(t); id != 1 {
		t.Fatalf("rightward swipe: id %d, want 1", id)
	}

	f.now = f.now.Add(time.Second)
	drag(30, 33)
	if id := f.currentID(t); id != 1 {
		t.Fatalf("short drag moved to %d", id)
	}
}

func TestSearch_LiveFilterAndClear(t *testing.T) {
	f := newFixture(t, sampleDeck())

	f.key("/")
	if !f.m.searching {
		t.Fatalf("search mode not entered")
	}
	for _, r := range "DEFER" {
		f.key(string(r))
	}
	if id := f.currentID(t); id != 3 {
		t.Fatalf("search DEFER: id %d, want 3", id)
	}
	if f.m.Session().Len() != 1 {
		t.Fatalf("view length = %d, want 1", f.m.Session().Len())
	}

	// q types into the field instead of quitting.
	f.key("q")
	if !f.m.searching {
		t.Fatalf("q left search mode")
	}
	if f.m.status != "No matching questions" {
		t.Fatalf("status = %q, want no-match notice", f.m.status)
	}
	if id := f.currentID(t); id != 3 {
		t.Fatalf("no-match search moved display to %d", id)
	}

	f.key("enter")
	if f.m.searching {
		t.Fatalf("enter did not close search")
	}
	f.key("esc")
	if f.m.Session().Len() != 3 || f.m.Session().Filtered() {
		t.Fatalf("esc did not clear filter")
	}
	if id := f.currentID(t); id != 3 {
		t.Fatalf("clear moved away from current question: %d", id)
	}
}

func TestTopic_Cycles(t *testing.T) {
	f := newFixture(t, sampleDeck())

	f.key("t")
	if f.m.topicChoice != "A" || f.m.Session().Len() != 2 {
		t.Fatalf("topic A: choice=%q len=%d", f.m.topicChoice, f.m.Session().Len())
	}
	if !strings.Contains(f.m.View(), "Question 1 of 2") {
		t.Fatalf("View missing filtered counter")
	}
	f.key("t")
	if id := f.currentID(t); id != 2 {
		t.Fatalf("topic B: id %d, want 2", id)
	}
	f.key("t")
	if f.m.topicChoice != "" || f.m.Session().Len() != 3 {
		t.Fatalf("cycle back to all: choice=%q len=%d", f.m.topicChoice, f.m.Session().Len())
	}
}

func TestReset_DeclineKeepsProgress(t *testing.T) {
	f := newFixture(t, sampleDeck())
	f.key("right")

	f.key("x")
	if f.m.confirm == nil || !f.m.Session().ResetPending() {
		t.Fatalf("reset did not open the confirmation gate")
	}
	if !strings.Contains(f.m.View(), resetPrompt) {
		t.Fatalf("confirmation prompt not rendered")
	}
	// Navigation keys go to the form, not the session.
	f.key("right")
	if id := f.currentID(t); id != 2 {
		t.Fatalf("key leaked past confirmation form: id %d", id)
	}

	f.key("esc")
	if f.m.confirm != nil || f.m.Session().ResetPending() {
		t.Fatalf("esc did not close the gate")
	}
	if f.m.Session().Tracker().Count() != 1 {
		t.Fatalf("declined reset changed studied count")
	}
}

func TestReset_ConfirmClearsProgress(t *testing.T) {
	f := newFixture(t, sampleDeck())
	f.key("right")
	f.key("right")

	f.key("x")
	next, _ := f.m.finishConfirm(true)
	f.m = next.(Model)

	if f.m.Session().Tracker().Count() != 0 {
		t.Fatalf("studied = %d, want 0", f.m.Session().Tracker().Count())
	}
	if id := f.currentID(t); id != 3 {
		t.Fatalf("reset moved position to %d", id)
	}
	for _, k := range []string{studyprogress.KeyStudied, studyprogress.KeyPosition} {
		if _, err := f.kv.Get(k); !errors.Is(err, studyprogress.ErrNotFound) {
			t.Fatalf("key %s still persisted", k)
		}
	}
}

func TestQuit_SavesPosition(t *testing.T) {
	f := newFixture(t, sampleDeck())
	f.key("right")
	f.kv.Delete(studyprogress.KeyPosition)

	cmd := f.key("q")
	if cmd == nil {
		t.Fatalf("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit command did not produce QuitMsg")
	}
	if raw, _ := f.kv.Get(studyprogress.KeyPosition); raw != "1" {
		t.Fatalf("saved position = %q, want 1", raw)
	}
}

func TestHint_FadesAfterThreshold(t *testing.T) {
	f := newFixture(t, sampleDeck())
	if f.m.hint != hintVisible {
		t.Fatalf("hint = %v, want visible", f.m.hint)
	}
	f.key("right")
	if f.m.hint != hintVisible {
		t.Fatalf("hint faded before threshold")
	}
	f.key("right")
	if f.m.hint != hintFading {
		t.Fatalf("hint = %v, want fading", f.m.hint)
	}
	f.send(hintFadeMsg{})
	if f.m.hint != hintHidden {
		t.Fatalf("hint = %v, want hidden", f.m.hint)
	}
}

func TestResize_Debounced(t *testing.T) {
	f := newFixture(t, sampleDeck())

	f.send(tea.WindowSizeMsg{Width: 60, Height: 20})
	f.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	if f.m.width != 100 {
		t.Fatalf("width changed before debounce settled: %d", f.m.width)
	}

	f.send(resizeSettledMsg{seq: f.m.resizeSeq - 1, width: 60, height: 20})
	if f.m.width != 100 {
		t.Fatalf("stale resize applied: %d", f.m.width)
	}
	f.send(resizeSettledMsg{seq: f.m.resizeSeq, width: 120, height: 40})
	if f.m.width != 120 || f.m.height != 40 {
		t.Fatalf("size = %dx%d, want 120x40", f.m.width, f.m.height)
	}
}

func TestHideAnswers(t *testing.T) {
	f := newFixture(t, sampleDeck())
	f.key("A")
	if !f.m.prefs.HideAnswers {
		t.Fatalf("HideAnswers not toggled")
	}
	if !strings.Contains(f.m.View(), "Answer hidden") {
		t.Fatalf("answer not hidden")
	}
	f.key("a")
	if strings.Contains(f.m.View(), "Answer hidden") {
		t.Fatalf("reveal did not show the answer")
	}
	f.key("right")
	if !strings.Contains(f.m.View(), "Answer hidden") {
		t.Fatalf("answer should hide again on the next card")
	}
}

func TestCycleTheme(t *testing.T) {
	f := newFixture(t, sampleDeck())
	start := f.m.theme.Name
	f.key("T")
	if f.m.theme.Name == start || f.m.prefs.Theme != f.m.theme.Name {
		t.Fatalf("theme = %q prefs = %q, want cycled from %q", f.m.theme.Name, f.m.prefs.Theme, start)
	}
}

func TestHelpOverlay(t *testing.T) {
	f := newFixture(t, sampleDeck())
	f.key("?")
	if !strings.Contains(f.m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	f.key("right")
	if f.m.showHelp {
		t.Fatalf("key did not close help")
	}
	if id := f.currentID(t); id != 1 {
		t.Fatalf("closing help also navigated to %d", id)
	}
}

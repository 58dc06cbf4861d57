package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/five82/cram/internal/config"
	"github.com/five82/cram/internal/deck"
	"github.com/five82/cram/internal/prefs"
	studyprogress "github.com/five82/cram/internal/progress"
	"github.com/five82/cram/internal/session"
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Source       string
	Tracker      *studyprogress.Tracker
	Config       config.Config
	Prefs        prefs.Prefs
	PrefsPath    string
	Capabilities Capabilities

	// Now and IntN are overridable for tests.
	Now  func() time.Time
	IntN func(n int) int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	source    string
	tracker   *studyprogress.Tracker
	cfg       config.Config
	prefs     prefs.Prefs
	prefsPath string
	caps      Capabilities
	now       func() time.Time
	intN      func(int) int

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	loading bool
	loadErr error
	session *session.Session
	exit    *exitState

	// Card
	card     viewport.Model
	bar      progress.Model
	md       *markdownCache
	revealed bool

	// Filter controls
	search      textinput.Model
	searching   bool
	topicChoice string

	// Reset confirmation
	confirm      *huh.Form
	confirmValue *bool

	// Feedback
	swipe     swipeState
	hint      hintState
	status    string
	statusSeq int
	resizeSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	tracker := opts.Tracker
	if tracker == nil {
		tracker = studyprogress.NewTracker(nil)
	}
	cfg := opts.Config
	if cfg.SwipeThreshold <= 0 || cfg.HintThreshold <= 0 || cfg.ResizeDebounce <= 0 {
		def := config.Default()
		if cfg.SwipeThreshold <= 0 {
			cfg.SwipeThreshold = def.SwipeThreshold
		}
		if cfg.HintThreshold <= 0 {
			cfg.HintThreshold = def.HintThreshold
		}
		if cfg.ResizeDebounce <= 0 {
			cfg.ResizeDebounce = def.ResizeDebounce
		}
	}
	p := opts.Prefs
	if p.Theme == "" {
		p = prefs.Defaults()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(p.Theme)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search questions and answers"
	search.CharLimit = 120

	return Model{
		ctx:       ctx,
		source:    opts.Source,
		tracker:   tracker,
		cfg:       cfg,
		prefs:     p,
		prefsPath: prefsPath,
		caps:      opts.Capabilities,
		now:       now,
		intN:      opts.IntN,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     theme,
		loading:   true,
		bar:       newProgressBar(theme),
		md:        &markdownCache{},
		exit:      &exitState{},
		search:    search,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadDeckCmd(m.ctx, m.source)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The confirmation form owns every message while it is open.
	if m.confirm != nil {
		if key, ok := msg.(tea.KeyMsg); !ok || key.String() != "ctrl+c" {
			return m.updateConfirm(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		if !m.ready {
			m.resize(msg.Width, msg.Height)
			m.ready = true
			return m, nil
		}
		m.resizeSeq++
		return m, resizeCmd(m.cfg.ResizeDebounce, m.resizeSeq, msg.Width, msg.Height)

	case resizeSettledMsg:
		if msg.seq == m.resizeSeq {
			m.resize(msg.width, msg.height)
		}
		return m, nil

	case deckLoadedMsg:
		return m.handleDeckLoaded(msg)

	case hintFadeMsg:
		m.hint = hintHidden
		return m, nil

	case statusMsg:
		return m.setStatus(string(msg))

	case statusClearMsg:
		if int(msg) == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.loadErr != nil {
		return m.renderLoadError()
	}
	if m.loading {
		return m.renderLoading()
	}
	if m.confirm != nil {
		return m.renderConfirm()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m Model) handleDeckLoaded(msg deckLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.loadErr = msg.err
		log.Printf("deck load failed: %v", msg.err)
		return m, nil
	}
	m.session = session.New(msg.deck, m.tracker, session.Options{IntN: m.intN})
	m.exit.session = m.session
	if m.tracker.Count() < m.cfg.HintThreshold {
		m.hint = hintVisible
	}
	m.refreshCard()
	return m, nil
}

// Session exposes the study session once the deck has loaded.
func (m Model) Session() *session.Session {
	return m.session
}

// exitState is shared by every copy of the Model so Run can save progress
// after the program stops, however it stopped.
type exitState struct {
	session *session.Session
}

// Messages

type deckLoadedMsg struct {
	deck deck.Deck
	err  error
}

type resizeSettledMsg struct {
	seq, width, height int
}

type statusMsg string

type statusClearMsg int

type hintFadeMsg struct{}

// Commands

func loadDeckCmd(ctx context.Context, source string) tea.Cmd {
	return func() tea.Msg {
		d, err := deck.Load(ctx, source)
		return deckLoadedMsg{deck: d, err: err}
	}
}

func resizeCmd(delay time.Duration, seq, width, height int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return resizeSettledMsg{seq: seq, width: width, height: height}
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx is
// cancelled. Progress is saved on the way out either way.
func Run(opts Options) error {
	m := New(opts)

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(m.ctx)}
	if m.caps.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, progOpts...)

	_, err := p.Run()
	if m.exit.session != nil {
		m.exit.session.SaveNow()
	}
	if err != nil && m.ctx.Err() != nil {
		// Cancelled by signal: a normal shutdown.
		return nil
	}
	return err
}

package session

import (
	"math/rand"

	"github.com/five82/cram/internal/deck"
	"github.com/five82/cram/internal/progress"
)

// Options configure a Session.
type Options struct {
	// IntN returns a uniform int in [0, n). Nil uses math/rand.
	IntN func(n int) int
}

// Session is the single owner of navigation state: the active view over the
// deck, the position inside it, the pending search/topic filter and the reset
// gate. Every method runs to completion and never fails.
type Session struct {
	deck    deck.Deck
	tracker *progress.Tracker
	intN    func(int) int

	view     []int // deck indices of the navigable sequence
	position int
	query    string
	topic    string

	resetPending bool
}

// New restores the last persisted position over the full deck. A position that
// no longer fits the deck falls back to the first question.
func New(d deck.Deck, tracker *progress.Tracker, opts Options) *Session {
	if tracker == nil {
		tracker = progress.NewTracker(nil)
	}
	intN := opts.IntN
	if intN == nil {
		intN = rand.Intn
	}
	s := &Session{
		deck:    d,
		tracker: tracker,
		intN:    intN,
		view:    allIndices(d.Len()),
	}
	state := tracker.Load()
	if state.LastPosition >= 0 && state.LastPosition < len(s.view) {
		s.position = state.LastPosition
	}
	return s
}

// Len returns the length of the navigable sequence.
func (s *Session) Len() int {
	return len(s.view)
}

// Position returns the index inside the navigable sequence.
func (s *Session) Position() int {
	return s.position
}

// Current returns the question under the cursor.
func (s *Session) Current() (deck.Question, bool) {
	if len(s.view) == 0 {
		return deck.Question{}, false
	}
	return s.deck.At(s.view[s.position]), true
}

// Deck returns the underlying question set.
func (s *Session) Deck() deck.Deck {
	return s.deck
}

// Tracker returns the progress tracker the session writes through.
func (s *Session) Tracker() *progress.Tracker {
	return s.tracker
}

// Next marks the current question studied and advances, wrapping at the end.
func (s *Session) Next() {
	s.moveTo(func(n int) int { return (s.position + 1) % n })
}

// Prev marks the current question studied and steps back, wrapping at the start.
func (s *Session) Prev() {
	s.moveTo(func(n int) int { return (s.position - 1 + n) % n })
}

// Random marks the current question studied and jumps to a uniformly chosen
// different question. With a single question it stays put.
func (s *Session) Random() {
	s.moveTo(func(n int) int {
		if n <= 1 {
			return s.position
		}
		// Draw from the n-1 other slots so no retry loop is needed.
		j := s.intN(n - 1)
		if j >= s.position {
			j++
		}
		return j
	})
}

func (s *Session) moveTo(pick func(n int) int) {
	n := len(s.view)
	if n == 0 {
		return
	}
	s.markCurrent()
	s.position = pick(n)
	s.save()
}

// SaveNow persists the studied set and current position, e.g. on exit.
func (s *Session) SaveNow() {
	s.save()
}

func (s *Session) markCurrent() {
	if q, ok := s.Current(); ok {
		s.tracker.MarkStudied(q.ID)
	}
}

// save persists the absolute deck index of the current question so the
// position survives a restart regardless of the filter that was active.
func (s *Session) save() {
	if len(s.view) == 0 {
		return
	}
	s.tracker.Save(s.view[s.position])
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

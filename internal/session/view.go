package session

import "github.com/five82/cram/internal/deck"

// Projection is everything the renderer needs, derived from session state.
type Projection struct {
	Question    deck.Question
	HasQuestion bool
	Number      int     // 1-based; 0 when empty
	Total       int     // length of the navigable sequence
	Percent     float64 // 0..100
	Studied     int     // global studied count
	IsStudied   bool
	Query       string
	Topic       string
	Filtered    bool
}

// View projects the current state. It has no side effects.
func (s *Session) View() Projection {
	p := Projection{
		Total:    len(s.view),
		Studied:  s.tracker.Count(),
		Query:    s.query,
		Topic:    s.topic,
		Filtered: s.Filtered(),
	}
	q, ok := s.Current()
	if !ok {
		return p
	}
	p.Question = q
	p.HasQuestion = true
	p.Number = s.position + 1
	p.Percent = Percent(s.position, len(s.view))
	p.IsStudied = s.tracker.IsStudied(q.ID)
	return p
}

// Percent returns (position+1)/length*100 clamped to [0,100], and 0 for an
// empty sequence.
func Percent(position, length int) float64 {
	if length <= 0 {
		return 0
	}
	pct := float64(position+1) / float64(length) * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

package session

import "strings"

// Apply narrows the navigable sequence to questions whose question or answer
// contains query (case-insensitive) and, when topic is non-empty, whose topic
// equals it. The question being left is marked studied first. A non-empty
// result becomes the new sequence with the cursor on its first match; an empty
// result leaves the sequence, position and display untouched.
func (s *Session) Apply(query, topic string) bool {
	s.markCurrent()

	matches := s.match(query, topic)
	if len(matches) == 0 {
		return false
	}
	s.query = query
	s.topic = topic
	s.view = matches
	s.position = 0
	s.save()
	return true
}

// Clear restores the full deck as the navigable sequence, keeping the cursor on
// the current question.
func (s *Session) Clear() {
	current := -1
	if len(s.view) > 0 {
		current = s.view[s.position]
	}
	s.query = ""
	s.topic = ""
	s.view = allIndices(s.deck.Len())
	s.position = 0
	if current >= 0 {
		s.position = current
	}
}

// Query returns the search text of the active filter.
func (s *Session) Query() string {
	return s.query
}

// Topic returns the topic of the active filter; empty means no topic filter.
func (s *Session) Topic() string {
	return s.topic
}

// Filtered reports whether a search or topic filter narrows the sequence.
func (s *Session) Filtered() bool {
	return s.query != "" || s.topic != ""
}

// Topics returns the topic options for the filter control.
func (s *Session) Topics() []string {
	return s.deck.Topics()
}

// NextTopic returns the topic following current in the option list, cycling
// through "" (no filter) after the last one.
func (s *Session) NextTopic(current string) string {
	topics := s.Topics()
	if len(topics) == 0 {
		return ""
	}
	if current == "" {
		return topics[0]
	}
	for i, t := range topics {
		if t == current {
			if i == len(topics)-1 {
				return ""
			}
			return topics[i+1]
		}
	}
	return ""
}

func (s *Session) match(query, topic string) []int {
	needle := strings.ToLower(query)
	var out []int
	for i := 0; i < s.deck.Len(); i++ {
		q := s.deck.At(i)
		if topic != "" && q.Topic != topic {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(q.Question), needle) &&
			!strings.Contains(strings.ToLower(q.Answer), needle) {
			continue
		}
		out = append(out, i)
	}
	return out
}

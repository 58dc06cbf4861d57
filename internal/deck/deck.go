package deck

// Question is a single flashcard. Identity is ID, never slice position.
type Question struct {
	ID       int    `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Topic    string `json:"topic" yaml:"topic"`
}

// Deck is the ordered, read-only question set loaded at startup.
type Deck struct {
	questions []Question
	byID      map[int]int
}

// New builds a Deck over a private copy of questions.
func New(questions []Question) Deck {
	d := Deck{
		questions: make([]Question, len(questions)),
		byID:      make(map[int]int, len(questions)),
	}
	copy(d.questions, questions)
	for i, q := range d.questions {
		if _, seen := d.byID[q.ID]; !seen {
			d.byID[q.ID] = i
		}
	}
	return d
}

// Len returns the number of questions.
func (d Deck) Len() int {
	return len(d.questions)
}

// At returns the question at index i. It panics when i is out of range,
// like a slice index.
func (d Deck) At(i int) Question {
	return d.questions[i]
}

// Index returns the position of the question with the given id.
func (d Deck) Index(id int) (int, bool) {
	i, ok := d.byID[id]
	return i, ok
}

// Topics returns the distinct non-empty topics in first-seen order.
func (d Deck) Topics() []string {
	seen := make(map[string]struct{})
	var topics []string
	for _, q := range d.questions {
		if q.Topic == "" {
			continue
		}
		if _, ok := seen[q.Topic]; ok {
			continue
		}
		seen[q.Topic] = struct{}{}
		topics = append(topics, q.Topic)
	}
	return topics
}

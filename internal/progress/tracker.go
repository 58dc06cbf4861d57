package progress

import (
	"encoding/json"
	"log"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Keys under which progress is persisted.
const (
	KeyStudied  = "studiedQuestions"
	KeyPosition = "lastQuestion"
)

// State is the persisted progress record.
type State struct {
	StudiedIDs   map[int]struct{}
	LastPosition int
}

// Tracker owns the studied set and writes it through to a KV on every change.
// Write failures are logged and otherwise ignored; losing progress is an
// acceptable degradation.
type Tracker struct {
	kv      KV
	studied map[int]struct{}
}

// NewTracker returns a Tracker with an empty studied set. Call Load to restore.
func NewTracker(kv KV) *Tracker {
	if kv == nil {
		kv = NewMemoryKV()
	}
	return &Tracker{kv: kv, studied: make(map[int]struct{})}
}

// Load reads both keys and replaces the in-memory studied set. Missing or
// malformed values fall back to an empty set and position 0.
func (t *Tracker) Load() State {
	state := State{StudiedIDs: make(map[int]struct{})}

	if raw, err := t.kv.Get(KeyStudied); err == nil {
		var ids []any
		if err := json.Unmarshal([]byte(raw), &ids); err == nil {
			for _, v := range ids {
				// Entries that are not whole numbers are dropped.
				f, ok := v.(float64)
				if !ok || f != math.Trunc(f) {
					continue
				}
				state.StudiedIDs[int(f)] = struct{}{}
			}
		}
	}

	if raw, err := t.kv.Get(KeyPosition); err == nil {
		if pos, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && pos >= 0 {
			state.LastPosition = pos
		}
	}

	t.studied = make(map[int]struct{}, len(state.StudiedIDs))
	for id := range state.StudiedIDs {
		t.studied[id] = struct{}{}
	}
	return state
}

// MarkStudied adds id to the studied set and persists it. Repeated calls are no-ops
// apart from the write.
func (t *Tracker) MarkStudied(id int) {
	t.studied[id] = struct{}{}
	t.writeStudied()
}

// IsStudied reports whether id has been studied.
func (t *Tracker) IsStudied(id int) bool {
	_, ok := t.studied[id]
	return ok
}

// Count returns the size of the studied set.
func (t *Tracker) Count() int {
	return len(t.studied)
}

// StudiedIDs returns the studied ids in ascending order.
func (t *Tracker) StudiedIDs() []int {
	ids := make([]int, 0, len(t.studied))
	for id := range t.studied {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Save persists the studied set and position.
func (t *Tracker) Save(position int) {
	t.writeStudied()
	if err := t.kv.Set(KeyPosition, strconv.Itoa(position)); err != nil {
		log.Printf("save position: %v", err)
	}
}

// Reset clears the studied set and removes both persisted keys. Callers are
// expected to gate it behind an explicit confirmation.
func (t *Tracker) Reset() {
	t.studied = make(map[int]struct{})
	for _, key := range []string{KeyStudied, KeyPosition} {
		if err := t.kv.Delete(key); err != nil {
			log.Printf("reset %s: %v", key, err)
		}
	}
}

func (t *Tracker) writeStudied() {
	data, err := json.Marshal(t.StudiedIDs())
	if err != nil {
		log.Printf("encode studied ids: %v", err)
		return
	}
	if err := t.kv.Set(KeyStudied, string(data)); err != nil {
		log.Printf("save studied ids: %v", err)
	}
}

// Package deck tracks one study pass over a level's card list: a shuffled
// traversal order, a cursor into it, and per-mode score tallies. The state
// is what the progress ledger persists per level.
package deck

import (
	"math/rand/v2"

	"github.com/yuchen/hanzideck/internal/answer"
)

// Tally counts correct answers out of attempts for one quiz mode.
type Tally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Score holds the per-mode tallies. The two modes are persisted under
// fixed names so summaries stay readable across sessions.
type Score struct {
	English Tally `json:"english"`
	Pinyin  Tally `json:"pinyin"`
}

// State is the persisted deck state for a single level.
type State struct {
	Order []int `json:"order"`
	Pos   int   `json:"pos"`
	Score Score `json:"score"`
}

// Shuffle returns a uniformly random permutation of 0..n-1 using an
// in-place Fisher-Yates walk from the top index down.
func Shuffle(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := n - 1; i >= 1; i-- {
		j := rand.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// New creates a freshly shuffled deck state for a list of n cards.
func New(n int) *State {
	return &State{Order: Shuffle(n)}
}

// Ensure checks the stored order against the live list length n and
// regenerates it when stale (the list grew or shrank since the save, or
// the stored order is not a valid permutation). Reports whether the deck
// was rebuilt. The score tallies always survive.
func (s *State) Ensure(n int) bool {
	if n == 0 {
		changed := len(s.Order) != 0 || s.Pos != 0
		s.Order = nil
		s.Pos = 0
		return changed
	}
	if s.isPermutation(n) && s.Pos >= 0 && s.Pos < n {
		return false
	}
	s.Order = Shuffle(n)
	s.Pos = 0
	return true
}

func (s *State) isPermutation(n int) bool {
	if len(s.Order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, idx := range s.Order {
		if idx < 0 || idx >= n || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

// CurrentIndex returns the card-list index under the cursor, or -1 for an
// empty deck.
func (s *State) CurrentIndex() int {
	if s.Pos < 0 || s.Pos >= len(s.Order) {
		return -1
	}
	return s.Order[s.Pos]
}

// Advance moves the cursor forward one card. At the end of the order it
// reshuffles and restarts at 0, so practice wraps endlessly. Reports
// whether a wrap happened.
func (s *State) Advance() bool {
	s.Pos++
	if s.Pos < len(s.Order) {
		return false
	}
	s.Order = Shuffle(len(s.Order))
	s.Pos = 0
	return true
}

// Restart regenerates the shuffle from scratch and resets the cursor.
func (s *State) Restart() {
	s.Order = Shuffle(len(s.Order))
	s.Pos = 0
}

// ShrinkTo rebuilds the deck for a list that lost cards (review removal
// from inside the Review level). The cursor stays valid for the shorter
// order.
func (s *State) ShrinkTo(n int) {
	s.Order = Shuffle(n)
	if s.Pos >= n {
		s.Pos = 0
	}
}

// Record adds one attempt for the given mode. Attempts in the mode-less
// fallback are not tallied; the persisted schema only knows the two real
// modes.
func (s *State) Record(mode answer.Mode, correct bool) {
	var t *Tally
	switch mode {
	case answer.ModeEnglish:
		t = &s.Score.English
	case answer.ModePinyin:
		t = &s.Score.Pinyin
	default:
		return
	}
	t.Total++
	if correct {
		t.Correct++
	}
}

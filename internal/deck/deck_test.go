package deck

import (
	"fmt"
	"testing"

	"github.com/yuchen/hanzideck/internal/answer"
)

func TestShuffleIsPermutation(t *testing.T) {
	for n := 0; n <= 50; n++ {
		order := Shuffle(n)
		if len(order) != n {
			t.Fatalf("Shuffle(%d) length = %d", n, len(order))
		}
		seen := make([]bool, n)
		for _, idx := range order {
			if idx < 0 || idx >= n || seen[idx] {
				t.Fatalf("Shuffle(%d) = %v is not a permutation", n, order)
			}
			seen[idx] = true
		}
	}
}

func TestShuffleRoughlyUniform(t *testing.T) {
	// n=3 has 6 permutations; over many trials each should appear with
	// frequency near 1/6. A loose band keeps this non-flaky.
	const trials = 12000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		counts[fmt.Sprint(Shuffle(3))]++
	}
	if len(counts) != 6 {
		t.Fatalf("saw %d distinct permutations, want 6", len(counts))
	}
	for perm, c := range counts {
		freq := float64(c) / trials
		if freq < 0.10 || freq > 0.24 {
			t.Errorf("permutation %s frequency %.3f outside [0.10, 0.24]", perm, freq)
		}
	}
}

func TestEnsureKeepsFreshState(t *testing.T) {
	s := &State{Order: []int{2, 0, 1}, Pos: 1}
	if s.Ensure(3) {
		t.Error("valid state should not be rebuilt")
	}
	if s.Pos != 1 {
		t.Errorf("pos = %d, want 1 (cursor resumes)", s.Pos)
	}
	if fmt.Sprint(s.Order) != "[2 0 1]" {
		t.Errorf("order changed: %v", s.Order)
	}
}

func TestEnsureHealsStaleLength(t *testing.T) {
	// Persisted order has 2 entries, live list now has 3.
	s := &State{Order: []int{1, 0}, Pos: 1}
	if !s.Ensure(3) {
		t.Fatal("stale order should be rebuilt")
	}
	if len(s.Order) != 3 || s.Pos != 0 {
		t.Errorf("after heal: order len %d pos %d, want 3 and 0", len(s.Order), s.Pos)
	}
}

func TestEnsureHealsCorruptOrder(t *testing.T) {
	tests := []struct {
		name  string
		state State
	}{
		{"duplicate index", State{Order: []int{0, 0, 1}, Pos: 0}},
		{"out of range index", State{Order: []int{0, 1, 5}, Pos: 0}},
		{"cursor out of bounds", State{Order: []int{0, 1, 2}, Pos: 7}},
		{"negative cursor", State{Order: []int{0, 1, 2}, Pos: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.state
			if !s.Ensure(3) {
				t.Fatal("corrupt state should be rebuilt")
			}
			if len(s.Order) != 3 || s.Pos != 0 {
				t.Errorf("after heal: order %v pos %d", s.Order, s.Pos)
			}
		})
	}
}

func TestEnsurePreservesScore(t *testing.T) {
	s := &State{Order: []int{0}, Pos: 0, Score: Score{English: Tally{Correct: 3, Total: 5}}}
	s.Ensure(4)
	if s.Score.English.Correct != 3 || s.Score.English.Total != 5 {
		t.Errorf("score lost on heal: %+v", s.Score)
	}
}

func TestAdvanceWrapsAtEnd(t *testing.T) {
	s := &State{Order: []int{2, 0, 1}, Pos: 2}
	if !s.Advance() {
		t.Fatal("expected wrap at end of order")
	}
	if s.Pos != 0 {
		t.Errorf("pos = %d, want 0 after wrap", s.Pos)
	}
	if len(s.Order) != 3 {
		t.Errorf("order length changed on wrap: %v", s.Order)
	}
	if s.CurrentIndex() < 0 || s.CurrentIndex() > 2 {
		t.Errorf("cursor out of bounds after wrap: %d", s.CurrentIndex())
	}
}

func TestAdvanceMidDeck(t *testing.T) {
	s := &State{Order: []int{2, 0, 1}, Pos: 0}
	if s.Advance() {
		t.Fatal("unexpected wrap")
	}
	if s.Pos != 1 || s.CurrentIndex() != 0 {
		t.Errorf("pos = %d current = %d", s.Pos, s.CurrentIndex())
	}
}

func TestRestart(t *testing.T) {
	s := &State{Order: []int{2, 0, 1}, Pos: 2}
	s.Restart()
	if s.Pos != 0 || len(s.Order) != 3 {
		t.Errorf("after restart: pos %d order %v", s.Pos, s.Order)
	}
}

func TestShrinkToKeepsCursorValid(t *testing.T) {
	s := &State{Order: []int{3, 1, 0, 2}, Pos: 3}
	s.ShrinkTo(3)
	if len(s.Order) != 3 {
		t.Fatalf("order length = %d, want 3", len(s.Order))
	}
	if s.Pos < 0 || s.Pos >= 3 {
		t.Errorf("cursor %d out of bounds", s.Pos)
	}

	s.ShrinkTo(0)
	if s.CurrentIndex() != -1 {
		t.Errorf("empty deck current = %d, want -1", s.CurrentIndex())
	}
}

func TestRecordPerMode(t *testing.T) {
	s := New(3)
	s.Record(answer.ModeEnglish, true)
	s.Record(answer.ModeEnglish, false)
	s.Record(answer.ModePinyin, true)
	s.Record(answer.ModeUnset, true) // fallback mode is not tallied

	if s.Score.English != (Tally{Correct: 1, Total: 2}) {
		t.Errorf("english tally = %+v", s.Score.English)
	}
	if s.Score.Pinyin != (Tally{Correct: 1, Total: 1}) {
		t.Errorf("pinyin tally = %+v", s.Score.Pinyin)
	}
}

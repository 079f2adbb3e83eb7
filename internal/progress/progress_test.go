package progress

import (
	"fmt"
	"testing"

	"github.com/yuchen/hanzideck/internal/deck"
	"github.com/yuchen/hanzideck/internal/vocab"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l := NewLedger()
	l.PerLevel[vocab.LevelHSK1] = &deck.State{
		Order: []int{2, 0, 1},
		Pos:   1,
		Score: deck.Score{English: deck.Tally{Correct: 4, Total: 6}},
	}
	l.AddReview("爱\x1fài")
	l.AddCustomCard(vocab.Card{Chinese: "猪", Pinyin: "zhū", English: "pig"})

	b, err := Encode(l)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got := Decode(b)
	st := got.PerLevel[vocab.LevelHSK1]
	if st == nil {
		t.Fatal("hsk1 deck state missing after round trip")
	}
	if fmt.Sprint(st.Order) != "[2 0 1]" || st.Pos != 1 {
		t.Errorf("deck state = order %v pos %d, want [2 0 1] pos 1", st.Order, st.Pos)
	}
	if st.Score.English != (deck.Tally{Correct: 4, Total: 6}) {
		t.Errorf("score = %+v", st.Score.English)
	}
	if !got.InReview("爱\x1fài") {
		t.Error("review key lost")
	}
	if len(got.CustomCards) != 1 || got.CustomCards[0].Chinese != "猪" {
		t.Errorf("custom cards = %+v", got.CustomCards)
	}
}

func TestDecodeTolerance(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"corrupt json", "{not json"},
		{"wrong top-level type", `[1,2,3]`},
		{"null deck record", `{"perLevel":{"hsk1":null}}`},
		{"order is a string", `{"perLevel":{"hsk1":{"order":"abc","pos":2}}}`},
		{"pos is a string", `{"perLevel":{"hsk1":{"order":[0,1],"pos":"x"}}}`},
		{"score missing", `{"perLevel":{"hsk1":{"order":[1,0],"pos":1}}}`},
		{"reviewKeys not an array", `{"reviewKeys":{"a":1}}`},
		{"customCards not an array", `{"customCards":"nope"}`},
		{"perLevel not an object", `{"perLevel":5}`},
		{"unknown level name", `{"perLevel":{"hsk9":{"order":[0],"pos":0}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Decode([]byte(tt.in))
			if l == nil {
				t.Fatal("Decode returned nil")
			}
			// Whatever survived must be usable: entering a level heals it.
			st := l.DeckFor(vocab.LevelHSK1)
			n := len(l.Cards(vocab.LevelHSK1))
			if len(st.Order) != n {
				t.Errorf("deck not healed: order len %d, list len %d", len(st.Order), n)
			}
			if st.Pos < 0 || (n > 0 && st.Pos >= n) {
				t.Errorf("cursor out of bounds: %d", st.Pos)
			}
		})
	}
}

func TestDecodeKeepsFieldsBesideWrongTypedOne(t *testing.T) {
	in := `{"perLevel":5,"reviewKeys":["a","b"],"customCards":[{"chinese":"猪","pinyin":"zhū","english":"pig"}]}`
	l := Decode([]byte(in))

	if len(l.PerLevel) != 0 {
		t.Errorf("per-level states = %v, want none from a wrong-typed field", l.PerLevel)
	}
	if fmt.Sprint(l.ReviewKeys) != "[a b]" {
		t.Errorf("review keys = %v, want [a b]", l.ReviewKeys)
	}
	if len(l.CustomCards) != 1 || l.CustomCards[0].Chinese != "猪" {
		t.Errorf("custom cards = %+v, want the pig card", l.CustomCards)
	}
}

func TestDecodeCoercesMissingCounters(t *testing.T) {
	in := `{"perLevel":{"hsk1":{"order":[1,0],"pos":0,"score":{"english":{"correct":3}}}}}`
	l := Decode([]byte(in))
	st := l.PerLevel[vocab.LevelHSK1]
	if st == nil {
		t.Fatal("deck record dropped")
	}
	if st.Score.English.Correct != 3 || st.Score.English.Total != 0 {
		t.Errorf("english tally = %+v, want correct 3 total 0", st.Score.English)
	}
	if st.Score.Pinyin != (deck.Tally{}) {
		t.Errorf("pinyin tally = %+v, want zero", st.Score.Pinyin)
	}
}

func TestDecodeDropsDuplicateReviewKeys(t *testing.T) {
	l := Decode([]byte(`{"reviewKeys":["a","b","a"]}`))
	if len(l.ReviewKeys) != 2 {
		t.Errorf("review keys = %v, want deduplicated pair", l.ReviewKeys)
	}
}

func TestDeckForResumesSavedCursor(t *testing.T) {
	l := NewLedger()
	l.AddCustomCard(vocab.Card{Chinese: "一", Pinyin: "yī", English: "one"})
	l.AddCustomCard(vocab.Card{Chinese: "二", Pinyin: "èr", English: "two"})
	l.AddCustomCard(vocab.Card{Chinese: "三", Pinyin: "sān", English: "three"})
	l.PerLevel[vocab.LevelExtra] = &deck.State{Order: []int{2, 0, 1}, Pos: 1}

	b, _ := Encode(l)
	got := Decode(b)

	st := got.DeckFor(vocab.LevelExtra)
	if fmt.Sprint(st.Order) != "[2 0 1]" || st.Pos != 1 {
		t.Errorf("resume: order %v pos %d, want [2 0 1] pos 1", st.Order, st.Pos)
	}
}

func TestDeckForHealsAfterCustomListGrew(t *testing.T) {
	l := NewLedger()
	l.AddCustomCard(vocab.Card{Chinese: "一", Pinyin: "yī", English: "one"})
	l.AddCustomCard(vocab.Card{Chinese: "二", Pinyin: "èr", English: "two"})
	l.PerLevel[vocab.LevelExtra] = &deck.State{Order: []int{1, 0}, Pos: 1}

	// A third card was added since the save.
	l.AddCustomCard(vocab.Card{Chinese: "三", Pinyin: "sān", English: "three"})

	st := l.DeckFor(vocab.LevelExtra)
	if len(st.Order) != 3 || st.Pos != 0 {
		t.Errorf("after heal: order %v pos %d, want fresh 3-length order at 0", st.Order, st.Pos)
	}
}

func TestAddReviewIdempotent(t *testing.T) {
	l := NewLedger()
	if !l.AddReview("k") {
		t.Error("first add should report true")
	}
	if l.AddReview("k") {
		t.Error("second add should be a no-op")
	}
	if len(l.ReviewKeys) != 1 {
		t.Errorf("review keys = %v", l.ReviewKeys)
	}
}

func TestRemoveCustomCardCascadesReview(t *testing.T) {
	l := NewLedger()
	c := vocab.Card{Chinese: "猪", Pinyin: "zhū", English: "pig"}
	l.AddCustomCard(c)
	l.AddReview(c.Key())
	l.AddReview("other")

	removed, ok := l.RemoveCustomCard(0)
	if !ok || removed != c {
		t.Fatalf("remove = %+v, %v", removed, ok)
	}
	if l.InReview(c.Key()) {
		t.Error("review set still contains deleted card's key")
	}
	if !l.InReview("other") {
		t.Error("unrelated review key removed")
	}
}

func TestRemoveCustomCardOutOfRange(t *testing.T) {
	l := NewLedger()
	if _, ok := l.RemoveCustomCard(0); ok {
		t.Error("removal from empty list should fail")
	}
}

func TestResetPreservesCustomCards(t *testing.T) {
	l := NewLedger()
	l.PerLevel[vocab.LevelHSK1] = deck.New(5)
	l.AddReview("k")
	l.AddCustomCard(vocab.Card{Chinese: "猪", Pinyin: "zhū", English: "pig"})

	l.Reset()

	if len(l.PerLevel) != 0 {
		t.Error("deck states survive reset")
	}
	if len(l.ReviewKeys) != 0 {
		t.Error("review keys survive reset")
	}
	if len(l.CustomCards) != 1 {
		t.Error("custom cards must survive reset")
	}
}

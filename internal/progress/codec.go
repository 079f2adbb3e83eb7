package progress

import (
	"encoding/json"

	"github.com/yuchen/hanzideck/internal/deck"
	"github.com/yuchen/hanzideck/internal/vocab"
)

// Encode serializes the full bundle for storage.
func Encode(l *Ledger) ([]byte, error) {
	return json.Marshal(l)
}

// Decode restores a bundle permissively. The stored schema is
// version-less, so unknown or malformed shapes are coerced field by
// field: a bad deck record falls back to absent, missing counters to
// zero, non-array lists to empty. Decode never fails; the worst input
// yields a fresh ledger.
func Decode(b []byte) *Ledger {
	l := NewLedger()
	if len(b) == 0 {
		return l
	}

	var raw struct {
		PerLevel    map[string]json.RawMessage `json:"perLevel"`
		ReviewKeys  json.RawMessage            `json:"reviewKeys"`
		CustomCards json.RawMessage            `json:"customCards"`
	}
	// encoding/json keeps filling the remaining fields past a type
	// mismatch, so the outer error is ignored: a wrong-typed field must
	// not throw away the valid ones decoded beside it.
	_ = json.Unmarshal(b, &raw)

	for name, msg := range raw.PerLevel {
		lvl := vocab.Level(name)
		if !lvl.Valid() {
			continue
		}
		if st := decodeDeck(msg); st != nil {
			l.PerLevel[lvl] = st
		}
	}

	var keys []string
	if err := json.Unmarshal(raw.ReviewKeys, &keys); err == nil {
		for _, k := range keys {
			l.AddReview(k) // drops duplicates
		}
	}

	var cards []vocab.Card
	if err := json.Unmarshal(raw.CustomCards, &cards); err == nil {
		l.CustomCards = cards
	}

	return l
}

// decodeDeck coerces one persisted deck record. Returns nil for null or
// unusable records; those levels start fresh on next entry.
func decodeDeck(msg json.RawMessage) *deck.State {
	if len(msg) == 0 || string(msg) == "null" {
		return nil
	}
	var raw struct {
		Order json.RawMessage `json:"order"`
		Pos   json.RawMessage `json:"pos"`
		Score json.RawMessage `json:"score"`
	}
	if err := json.Unmarshal(msg, &raw); err != nil {
		return nil
	}

	st := &deck.State{}
	if err := json.Unmarshal(raw.Order, &st.Order); err != nil {
		st.Order = nil
	}
	if err := json.Unmarshal(raw.Pos, &st.Pos); err != nil {
		st.Pos = 0
	}
	st.Score = decodeScore(raw.Score)
	return st
}

func decodeScore(msg json.RawMessage) deck.Score {
	var raw struct {
		English json.RawMessage `json:"english"`
		Pinyin  json.RawMessage `json:"pinyin"`
	}
	var score deck.Score
	if err := json.Unmarshal(msg, &raw); err != nil {
		return score
	}
	score.English = decodeTally(raw.English)
	score.Pinyin = decodeTally(raw.Pinyin)
	return score
}

func decodeTally(msg json.RawMessage) deck.Tally {
	var t deck.Tally
	if err := json.Unmarshal(msg, &t); err != nil {
		return deck.Tally{}
	}
	if t.Correct < 0 {
		t.Correct = 0
	}
	if t.Total < 0 {
		t.Total = 0
	}
	return t
}

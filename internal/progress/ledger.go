// Package progress owns the persisted state bundle: per-level deck
// states, the review set, and the user-authored custom card list. The
// whole bundle is serialized to a single JSON record and written back in
// full after every observable state change.
package progress

import (
	"github.com/yuchen/hanzideck/internal/deck"
	"github.com/yuchen/hanzideck/internal/vocab"
)

// Ledger is the full application state bundle.
type Ledger struct {
	PerLevel    map[vocab.Level]*deck.State `json:"perLevel"`
	ReviewKeys  []string                    `json:"reviewKeys"`
	CustomCards []vocab.Card                `json:"customCards"`
}

// NewLedger returns an empty ledger with initialized containers.
func NewLedger() *Ledger {
	return &Ledger{
		PerLevel: make(map[vocab.Level]*deck.State),
	}
}

// Cards resolves the live card list for a level from the ledger's custom
// cards and review set.
func (l *Ledger) Cards(lvl vocab.Level) []vocab.Card {
	return vocab.Cards(lvl, l.CustomCards, l.ReviewSet())
}

// DeckFor returns the deck state for a level, lazily creating it and
// self-healing a stale order against the live card-list length.
func (l *Ledger) DeckFor(lvl vocab.Level) *deck.State {
	n := len(l.Cards(lvl))
	st, ok := l.PerLevel[lvl]
	if !ok || st == nil {
		st = deck.New(n)
		l.PerLevel[lvl] = st
		return st
	}
	st.Ensure(n)
	return st
}

// ReviewSet returns review membership as a set.
func (l *Ledger) ReviewSet() map[string]bool {
	return vocab.KeySet(l.ReviewKeys)
}

// InReview reports whether a card key is flagged for review.
func (l *Ledger) InReview(key string) bool {
	for _, k := range l.ReviewKeys {
		if k == key {
			return true
		}
	}
	return false
}

// AddReview flags a card key for review. Adding is idempotent; reports
// whether the key was newly added.
func (l *Ledger) AddReview(key string) bool {
	if l.InReview(key) {
		return false
	}
	l.ReviewKeys = append(l.ReviewKeys, key)
	return true
}

// RemoveReview unflags a card key. Reports whether it was present.
func (l *Ledger) RemoveReview(key string) bool {
	for i, k := range l.ReviewKeys {
		if k == key {
			l.ReviewKeys = append(l.ReviewKeys[:i], l.ReviewKeys[i+1:]...)
			return true
		}
	}
	return false
}

// AddCustomCard appends an already-validated card to the custom list.
// Insertion order is preserved.
func (l *Ledger) AddCustomCard(c vocab.Card) {
	l.CustomCards = append(l.CustomCards, c)
}

// RemoveCustomCard deletes the custom card at position i and cascades
// removal of its key from the review set. Reports the removed card.
func (l *Ledger) RemoveCustomCard(i int) (vocab.Card, bool) {
	if i < 0 || i >= len(l.CustomCards) {
		return vocab.Card{}, false
	}
	c := l.CustomCards[i]
	l.CustomCards = append(l.CustomCards[:i], l.CustomCards[i+1:]...)
	l.RemoveReview(c.Key())
	return c, true
}

// Reset clears all deck states and the review set. Custom cards survive a
// reset.
func (l *Ledger) Reset() {
	l.PerLevel = make(map[vocab.Level]*deck.State)
	l.ReviewKeys = nil
}

// Package quiz implements the study session state machine. Every UI
// action maps to one transition function here, so the controller is unit
// testable without a rendering layer. The caller persists the ledger
// whenever a transition reports a change.
package quiz

import (
	"strings"

	"github.com/yuchen/hanzideck/internal/answer"
	"github.com/yuchen/hanzideck/internal/deck"
	"github.com/yuchen/hanzideck/internal/progress"
	"github.com/yuchen/hanzideck/internal/vocab"
)

// Phase is the per-card state: waiting for an answer, or showing the
// result with both fields revealed.
type Phase int

const (
	PhaseAsking Phase = iota
	PhaseRevealed
)

// Session is one study run over a level in a fixed quiz mode.
type Session struct {
	Level vocab.Level
	Mode  answer.Mode
	Cards []vocab.Card
	Deck  *deck.State

	Phase       Phase
	HintShown   bool
	LastInput   string
	LastCorrect bool

	ledger *progress.Ledger
}

// NewSession enters a level: the ledger's deck state is looked up or
// lazily created, and a stale order is healed against the live list.
func NewSession(l *progress.Ledger, lvl vocab.Level, mode answer.Mode) *Session {
	return &Session{
		Level:  lvl,
		Mode:   mode,
		Cards:  l.Cards(lvl),
		Deck:   l.DeckFor(lvl),
		ledger: l,
	}
}

// Current returns the card under the cursor. ok is false for an empty
// deck (e.g. the Review level with nothing flagged).
func (s *Session) Current() (vocab.Card, bool) {
	idx := s.Deck.CurrentIndex()
	if idx < 0 || idx >= len(s.Cards) {
		return vocab.Card{}, false
	}
	return s.Cards[idx], true
}

// Submit evaluates the typed answer. The first submission judges it,
// tallies the mode's score, and reveals the card; empty or
// whitespace-only input and re-submissions after a reveal are no-ops.
// Reports whether an evaluation happened.
func (s *Session) Submit(input string) bool {
	if s.Phase == PhaseRevealed {
		return false
	}
	if strings.TrimSpace(input) == "" {
		return false
	}
	card, ok := s.Current()
	if !ok {
		return false
	}
	s.LastInput = input
	s.LastCorrect = answer.Check(card, s.Mode, input)
	s.Deck.Record(s.Mode, s.LastCorrect)
	s.Phase = PhaseRevealed
	return true
}

// Hint reveals the non-quizzed field before submission. Once a result is
// shown the full reveal supersedes it. Reports whether the hint state
// changed.
func (s *Session) Hint() bool {
	if s.Phase != PhaseAsking || s.HintShown {
		return false
	}
	if _, ok := s.Current(); !ok {
		return false
	}
	s.HintShown = true
	return true
}

// Next advances past a revealed card, wrapping with a reshuffle at the
// end of the deck. Allowed only after a result is shown. Reports whether
// the cursor moved.
func (s *Session) Next() bool {
	if s.Phase != PhaseRevealed {
		return false
	}
	s.Deck.Advance()
	s.clearCard()
	return true
}

// Skip advances without judging or revealing the current card. Allowed
// only before a result is shown.
func (s *Session) Skip() bool {
	if s.Phase != PhaseAsking {
		return false
	}
	if _, ok := s.Current(); !ok {
		return false
	}
	s.Deck.Advance()
	s.clearCard()
	return true
}

// Restart regenerates the shuffle for the current level from scratch,
// regardless of whether a result is pending.
func (s *Session) Restart() {
	s.Deck.Restart()
	s.clearCard()
}

// ToggleReview flags or unflags the current card. Allowed only after a
// result is shown. Unflagging while inside the Review level also drops
// the card from the active list and rebuilds the deck for the shorter
// list. Returns the new membership and whether anything changed.
func (s *Session) ToggleReview() (flagged, changed bool) {
	if s.Phase != PhaseRevealed {
		return false, false
	}
	card, ok := s.Current()
	if !ok {
		return false, false
	}

	key := card.Key()
	if !s.ledger.InReview(key) {
		s.ledger.AddReview(key)
		return true, true
	}

	s.ledger.RemoveReview(key)
	if s.Level == vocab.LevelReview {
		s.Cards = s.ledger.Cards(s.Level)
		s.Deck.ShrinkTo(len(s.Cards))
		s.clearCard()
	}
	return false, true
}

// InReview reports whether the current card is flagged.
func (s *Session) InReview() bool {
	if card, ok := s.Current(); ok {
		return s.ledger.InReview(card.Key())
	}
	return false
}

func (s *Session) clearCard() {
	s.Phase = PhaseAsking
	s.HintShown = false
	s.LastInput = ""
	s.LastCorrect = false
}

package game

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/yuchen/hanzideck/internal/answer"
	"github.com/yuchen/hanzideck/internal/quiz"
	"github.com/yuchen/hanzideck/internal/screen"
	"github.com/yuchen/hanzideck/internal/screens/shared"
	"github.com/yuchen/hanzideck/internal/store"
	"github.com/yuchen/hanzideck/internal/ui/components"
	"github.com/yuchen/hanzideck/internal/ui/layout"
	"github.com/yuchen/hanzideck/internal/vocab"
)

// GameScreen runs one study session: it feeds key presses into the
// quiz state machine, persists progress after every change, and logs
// each judged answer.
type GameScreen struct {
	deps      *shared.Deps
	sess      *quiz.Session
	sessionID string
	input     components.TextInput
	askedAt   time.Time
}

var _ screen.Screen = (*GameScreen)(nil)

// New creates a game screen for the given level and mode.
func New(deps *shared.Deps, level vocab.Level, mode answer.Mode) *GameScreen {
	g := &GameScreen{
		deps:      deps,
		sess:      quiz.NewSession(deps.Ledger, level, mode),
		sessionID: uuid.NewString(),
		input:     components.NewTextInput(inputPlaceholder(mode), 64),
		askedAt:   time.Now(),
	}
	// Entering a level may have created or healed its deck.
	deps.SaveLedger()
	return g
}

func inputPlaceholder(mode answer.Mode) string {
	if mode == answer.ModePinyin {
		return "type the pinyin, tones optional"
	}
	return "type the English meaning"
}

func (g *GameScreen) Init() tea.Cmd {
	return g.input.Init()
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd
	}

	if _, ok := g.sess.Current(); !ok {
		// Empty deck: Esc back home is handled upstream.
		return g, nil
	}

	switch g.sess.Phase {
	case quiz.PhaseAsking:
		switch kmsg.String() {
		case "enter":
			g.submit()
		case "tab":
			g.sess.Hint()
		case "ctrl+s":
			if g.sess.Skip() {
				g.nextCard()
				g.deps.SaveLedger()
			}
		case "ctrl+r":
			g.restart()
		default:
			var cmd tea.Cmd
			g.input, cmd = g.input.Update(msg)
			return g, cmd
		}

	case quiz.PhaseRevealed:
		switch kmsg.String() {
		case "enter", "n":
			if g.sess.Next() {
				g.nextCard()
				g.deps.SaveLedger()
			}
		case "f":
			if _, changed := g.sess.ToggleReview(); changed {
				g.deps.SaveLedger()
			}
		case "r":
			g.restart()
		}
	}

	return g, nil
}

func (g *GameScreen) submit() {
	card, _ := g.sess.Current()
	given := g.input.Value()
	if !g.sess.Submit(given) {
		return
	}
	g.input.Submit(g.sess.LastCorrect)
	g.deps.SaveLedger()
	g.deps.LogAnswer(store.AnswerRecord{
		SessionID: g.sessionID,
		Level:     string(g.sess.Level),
		Mode:      string(g.sess.Mode),
		CardKey:   card.Key(),
		Given:     given,
		Correct:   g.sess.LastCorrect,
		ElapsedMs: int(time.Since(g.askedAt).Milliseconds()),
	})
}

func (g *GameScreen) restart() {
	g.sess.Restart()
	g.nextCard()
	g.deps.SaveLedger()
}

// nextCard resets the per-card UI state after the cursor moved.
func (g *GameScreen) nextCard() {
	g.input.Reset()
	g.askedAt = time.Now()
}

func (g *GameScreen) Title() string {
	return fmt.Sprintf("%s · %s", g.sess.Level.DisplayName(), g.sess.Mode.DisplayName())
}

// HeaderScore shows the running tally for the session's mode.
func (g *GameScreen) HeaderScore() string {
	tally := g.sess.Deck.Score.English
	if g.sess.Mode == answer.ModePinyin {
		tally = g.sess.Deck.Score.Pinyin
	}
	return fmt.Sprintf("✓ %d/%d  ", tally.Correct, tally.Total)
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	if g.sess.Phase == quiz.PhaseRevealed {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "F", Description: "Flag review"},
			{Key: "R", Description: "Restart"},
			{Key: "Ctrl+H", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "Tab", Description: "Hint"},
		{Key: "Ctrl+S", Description: "Skip"},
		{Key: "Ctrl+R", Description: "Restart"},
		{Key: "Esc", Description: "Back"},
	}
}

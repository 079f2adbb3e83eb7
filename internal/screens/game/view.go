package game

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/yuchen/hanzideck/internal/answer"
	"github.com/yuchen/hanzideck/internal/quiz"
	"github.com/yuchen/hanzideck/internal/ui/layout"
	"github.com/yuchen/hanzideck/internal/ui/theme"
	"github.com/yuchen/hanzideck/internal/vocab"
)

func (g *GameScreen) View(width, height int) string {
	card, ok := g.sess.Current()
	if !ok {
		return layout.Centered(g.emptyView(), width, height)
	}

	position := theme.Subtitle.Render(fmt.Sprintf("Card %d of %d",
		g.sess.Deck.Pos+1, len(g.sess.Cards)))

	var body string
	if g.sess.Phase == quiz.PhaseRevealed {
		body = g.revealedView(card)
	} else {
		body = g.askingView(card)
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		position,
		"",
		theme.Card.Render(body),
	)
	return layout.Centered(block, width, height)
}

func (g *GameScreen) askingView(card vocab.Card) string {
	lines := []string{
		theme.Hanzi.Render(card.Chinese),
	}

	if g.sess.HintShown {
		hint := card.Pinyin
		if g.sess.Mode == answer.ModePinyin {
			hint = card.English
		}
		lines = append(lines, theme.Hint.Render("hint: "+hint))
	}

	lines = append(lines, "", g.input.View())
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (g *GameScreen) revealedView(card vocab.Card) string {
	var verdict string
	if g.sess.LastCorrect {
		verdict = theme.Correct.Render("✓ Correct!")
	} else {
		verdict = theme.Incorrect.Render("✗ Not quite")
	}

	lines := []string{
		verdict,
		"",
		theme.Hanzi.Render(card.Chinese),
		theme.Body.Render(card.Pinyin),
		theme.Body.Render(card.English),
	}

	if !g.sess.LastCorrect {
		lines = append(lines, "",
			theme.Hint.Render("you typed: "+g.sess.LastInput))
	}

	if g.sess.InReview() {
		lines = append(lines, "",
			theme.Flagged.Render("★ flagged for review"))
	}

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (g *GameScreen) emptyView() string {
	switch g.sess.Level {
	case vocab.LevelReview:
		return lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("Nothing to review"),
			"",
			theme.Subtitle.Render("Flag cards with F after answering,"),
			theme.Subtitle.Render("then come back here."),
		)
	case vocab.LevelExtra:
		return lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("No cards yet"),
			"",
			theme.Subtitle.Render("Add your own cards from the home screen."),
		)
	default:
		return theme.Subtitle.Render("This level has no cards.")
	}
}

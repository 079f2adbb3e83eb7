package extras

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuchen/hanzideck/internal/screen"
	"github.com/yuchen/hanzideck/internal/screens/shared"
	"github.com/yuchen/hanzideck/internal/ui/layout"
	"github.com/yuchen/hanzideck/internal/ui/theme"
)

// ListScreen shows the custom cards and deletes them on demand.
type ListScreen struct {
	deps     *shared.Deps
	selected int
}

var _ screen.Screen = (*ListScreen)(nil)

// NewList creates the custom card list.
func NewList(deps *shared.Deps) *ListScreen {
	return &ListScreen{deps: deps}
}

func (s *ListScreen) Init() tea.Cmd {
	return nil
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	n := len(s.deps.Ledger.CustomCards)
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < n-1 {
			s.selected++
		}
	case "d", "delete", "backspace":
		if _, ok := s.deps.Ledger.RemoveCustomCard(s.selected); ok {
			s.deps.SaveLedger()
			if s.selected >= len(s.deps.Ledger.CustomCards) && s.selected > 0 {
				s.selected--
			}
		}
	}
	return s, nil
}

func (s *ListScreen) View(width, height int) string {
	cards := s.deps.Ledger.CustomCards
	if len(cards) == 0 {
		return layout.Centered(
			theme.Subtitle.Render("All cards deleted. Esc to go back."),
			width, height)
	}

	rows := make([]string, 0, len(cards)+2)
	rows = append(rows,
		theme.Title.Render(fmt.Sprintf("My Cards (%d)", len(cards))), "")

	for i, c := range cards {
		line := fmt.Sprintf("%s  %s — %s", c.Chinese, c.Pinyin, c.English)
		if s.deps.Ledger.InReview(c.Key()) {
			line += "  " + theme.Flagged.Render("★")
		}
		if i == s.selected {
			rows = append(rows, theme.Selected.Render("  ▸ "+line))
		} else {
			rows = append(rows, theme.Unselected.Render("    "+line))
		}
	}

	block := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return layout.Centered(block, width, height)
}

func (s *ListScreen) Title() string {
	return "My Cards"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

package modeselect

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuchen/hanzideck/internal/answer"
	"github.com/yuchen/hanzideck/internal/router"
	"github.com/yuchen/hanzideck/internal/screen"
	"github.com/yuchen/hanzideck/internal/screens/game"
	"github.com/yuchen/hanzideck/internal/screens/shared"
	"github.com/yuchen/hanzideck/internal/ui/components"
	"github.com/yuchen/hanzideck/internal/ui/layout"
	"github.com/yuchen/hanzideck/internal/ui/theme"
	"github.com/yuchen/hanzideck/internal/vocab"
)

// ModeSelectScreen asks whether to answer in English or pinyin.
type ModeSelectScreen struct {
	deps  *shared.Deps
	level vocab.Level
	menu  components.Menu
}

var _ screen.Screen = (*ModeSelectScreen)(nil)

// New creates a mode select screen for the given level.
func New(deps *shared.Deps, level vocab.Level) *ModeSelectScreen {
	modes := []answer.Mode{answer.ModeEnglish, answer.ModePinyin}

	items := make([]components.MenuItem, 0, len(modes))
	for _, mode := range modes {
		mode := mode
		items = append(items, components.MenuItem{
			Label:  mode.DisplayName(),
			Detail: modeDetail(mode),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					// Replace so Esc from the game returns straight home.
					return router.ReplaceScreenMsg{Screen: game.New(deps, level, mode)}
				}
			},
		})
	}

	menu := components.NewMenu(items)
	for i, mode := range modes {
		if mode == deps.DefaultMode {
			menu.Selected = i
		}
	}

	return &ModeSelectScreen{
		deps:  deps,
		level: level,
		menu:  menu,
	}
}

func modeDetail(mode answer.Mode) string {
	switch mode {
	case answer.ModeEnglish:
		return "type the meaning"
	case answer.ModePinyin:
		return "type the reading, tones optional"
	default:
		return ""
	}
}

func (s *ModeSelectScreen) Init() tea.Cmd {
	return nil
}

func (s *ModeSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ModeSelectScreen) View(width, height int) string {
	title := theme.Title.Render(s.level.DisplayName())
	subtitle := theme.Subtitle.Render(fmt.Sprintf("%d cards · how do you want to answer?",
		len(s.deps.Ledger.Cards(s.level))))

	block := lipgloss.JoinVertical(lipgloss.Center,
		title,
		subtitle,
		"",
		s.menu.View(),
	)

	return layout.Centered(block, width, height)
}

func (s *ModeSelectScreen) Title() string {
	return "Choose Mode"
}

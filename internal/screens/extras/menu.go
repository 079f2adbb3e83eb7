// Package extras holds the screens for user-authored cards: a small
// hub menu, the add-card form, and the card list with delete.
package extras

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuchen/hanzideck/internal/router"
	"github.com/yuchen/hanzideck/internal/screen"
	"github.com/yuchen/hanzideck/internal/screens/modeselect"
	"github.com/yuchen/hanzideck/internal/screens/shared"
	"github.com/yuchen/hanzideck/internal/ui/components"
	"github.com/yuchen/hanzideck/internal/ui/layout"
	"github.com/yuchen/hanzideck/internal/ui/theme"
	"github.com/yuchen/hanzideck/internal/vocab"
)

// MenuScreen is the hub for managing custom cards.
type MenuScreen struct {
	deps *shared.Deps
	menu components.Menu
}

var _ screen.Screen = (*MenuScreen)(nil)

// NewMenu creates the custom cards hub.
func NewMenu(deps *shared.Deps) *MenuScreen {
	return &MenuScreen{
		deps: deps,
		menu: components.NewMenu(buildMenuItems(deps)),
	}
}

func buildMenuItems(deps *shared.Deps) []components.MenuItem {
	return []components.MenuItem{
		{
			Label:    "Practice",
			Detail:   fmt.Sprintf("%d cards", len(deps.Ledger.CustomCards)),
			Disabled: len(deps.Ledger.CustomCards) == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: modeselect.New(deps, vocab.LevelExtra)}
				}
			},
		},
		{Label: "Add a card", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: NewAdd(deps)}
			}
		}},
		{
			Label:    "My cards",
			Detail:   fmt.Sprintf("%d", len(deps.Ledger.CustomCards)),
			Disabled: len(deps.Ledger.CustomCards) == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: NewList(deps)}
				}
			},
		},
	}
}

func (s *MenuScreen) Init() tea.Cmd {
	s.menu.Items = buildMenuItems(s.deps)
	if s.menu.Selected >= len(s.menu.Items) {
		s.menu.Selected = 0
	}
	return nil
}

func (s *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *MenuScreen) View(width, height int) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("My Cards"),
		theme.Subtitle.Render("your own vocabulary, quizzed like any level"),
		"",
		s.menu.View(),
	)
	return layout.Centered(block, width, height)
}

func (s *MenuScreen) Title() string {
	return "Manage Cards"
}

package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuchen/hanzideck/internal/router"
	"github.com/yuchen/hanzideck/internal/screen"
	"github.com/yuchen/hanzideck/internal/screens/extras"
	"github.com/yuchen/hanzideck/internal/screens/modeselect"
	"github.com/yuchen/hanzideck/internal/screens/shared"
	"github.com/yuchen/hanzideck/internal/screens/stats"
	"github.com/yuchen/hanzideck/internal/ui/components"
	"github.com/yuchen/hanzideck/internal/ui/layout"
	"github.com/yuchen/hanzideck/internal/ui/theme"
	"github.com/yuchen/hanzideck/internal/vocab"
)

// HomeScreen is the level picker shown on launch.
type HomeScreen struct {
	deps *shared.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps *shared.Deps) *HomeScreen {
	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(buildItems(deps)),
	}
}

func buildItems(deps *shared.Deps) []components.MenuItem {
	var items []components.MenuItem
	for _, lvl := range vocab.AllLevels {
		lvl := lvl
		cards := deps.Ledger.Cards(lvl)
		items = append(items, components.MenuItem{
			Label:    lvl.DisplayName(),
			Detail:   levelDetail(deps, lvl, len(cards)),
			Disabled: len(cards) == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: modeselect.New(deps, lvl)}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "Manage Cards", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: extras.NewMenu(deps)}
			}
		}},
		components.MenuItem{Label: "Statistics", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps)}
			}
		}},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	return items
}

// levelDetail describes a level for the menu: card count plus, when a
// deck is underway, the resume position.
func levelDetail(deps *shared.Deps, lvl vocab.Level, count int) string {
	switch {
	case count == 0 && lvl == vocab.LevelReview:
		return "nothing flagged yet"
	case count == 0 && lvl == vocab.LevelExtra:
		return "no cards added yet"
	}

	detail := fmt.Sprintf("%d cards", count)
	if st, ok := deps.Ledger.PerLevel[lvl]; ok && st != nil && st.Pos > 0 && st.Pos < len(st.Order) {
		detail += fmt.Sprintf(" · resume %d/%d", st.Pos+1, len(st.Order))
	}
	return detail
}

func (h *HomeScreen) Init() tea.Cmd {
	// Rebuild so counts and resume markers reflect play since the
	// screen was first constructed.
	h.menu.Items = buildItems(h.deps)
	if h.menu.Selected >= len(h.menu.Items) {
		h.menu.Selected = 0
	}
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("汉字deck")
	subtitle := theme.Subtitle.Render("Chinese vocabulary flashcards")

	block := lipgloss.JoinVertical(lipgloss.Center,
		title,
		subtitle,
		"",
		h.menu.View(),
	)

	return layout.Centered(block, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

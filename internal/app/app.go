package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/yuchen/hanzideck/internal/answer"
	"github.com/yuchen/hanzideck/internal/progress"
	"github.com/yuchen/hanzideck/internal/router"
	"github.com/yuchen/hanzideck/internal/screen"
	"github.com/yuchen/hanzideck/internal/screens/home"
	"github.com/yuchen/hanzideck/internal/screens/shared"
	"github.com/yuchen/hanzideck/internal/store"
	"github.com/yuchen/hanzideck/internal/ui/layout"
)

// Options carries the services the TUI needs.
type Options struct {
	Ledger      *progress.Ledger
	States      store.StateRepo
	Answers     store.AnswerLog
	Log         *zap.SugaredLogger
	DefaultMode answer.Mode
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	deps := &shared.Deps{
		Ledger:      opts.Ledger,
		States:      opts.States,
		Answers:     opts.Answers,
		Log:         opts.Log,
		DefaultMode: opts.DefaultMode,
	}
	if deps.Ledger == nil {
		deps.Ledger = progress.NewLedger()
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop().Sugar()
	}
	return AppModel{
		router: router.New(home.New(deps)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case "ctrl+h":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.HomeMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	score := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.ScoreProvider); ok {
			score = sp.HeaderScore()
		}
	}

	header := layout.RenderHeader(title, score, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+H", Description: "Home"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

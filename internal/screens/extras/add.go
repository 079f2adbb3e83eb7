package extras

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuchen/hanzideck/internal/screen"
	"github.com/yuchen/hanzideck/internal/screens/shared"
	"github.com/yuchen/hanzideck/internal/ui/components"
	"github.com/yuchen/hanzideck/internal/ui/layout"
	"github.com/yuchen/hanzideck/internal/ui/theme"
	"github.com/yuchen/hanzideck/internal/vocab"
)

const (
	fieldChinese = iota
	fieldPinyin
	fieldEnglish
	fieldCount
)

// AddScreen is the three-field form for a new custom card.
type AddScreen struct {
	deps    *shared.Deps
	inputs  [fieldCount]components.TextInput
	focused int
	errMsg  string
	added   int
}

var _ screen.Screen = (*AddScreen)(nil)

// NewAdd creates the add-card form.
func NewAdd(deps *shared.Deps) *AddScreen {
	s := &AddScreen{deps: deps}
	s.inputs[fieldChinese] = components.NewTextInput("汉字 (characters)", 16)
	s.inputs[fieldPinyin] = components.NewTextInput("pinyin", 48)
	s.inputs[fieldEnglish] = components.NewTextInput("English meaning", 64)
	s.inputs[fieldPinyin].Model.Blur()
	s.inputs[fieldEnglish].Model.Blur()
	return s
}

func (s *AddScreen) Init() tea.Cmd {
	return s.inputs[s.focused].Model.Focus()
}

func (s *AddScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.focus((s.focused + 1) % fieldCount)
	case "shift+tab", "up":
		return s, s.focus((s.focused + fieldCount - 1) % fieldCount)
	case "enter":
		if s.focused < fieldEnglish {
			return s, s.focus(s.focused + 1)
		}
		return s, s.submit()
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s *AddScreen) focus(i int) tea.Cmd {
	s.inputs[s.focused].Model.Blur()
	s.focused = i
	return s.inputs[s.focused].Model.Focus()
}

func (s *AddScreen) submit() tea.Cmd {
	card, err := vocab.NewCustomCard(
		s.inputs[fieldChinese].Value(),
		s.inputs[fieldPinyin].Value(),
		s.inputs[fieldEnglish].Value(),
		s.deps.Ledger.CustomCards,
	)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	s.deps.Ledger.AddCustomCard(card)
	s.deps.SaveLedger()
	s.added++
	s.errMsg = ""
	for i := range s.inputs {
		s.inputs[i].Reset()
	}
	return s.focus(fieldChinese)
}

func (s *AddScreen) View(width, height int) string {
	labels := [fieldCount]string{"Characters", "Pinyin", "English"}

	rows := make([]string, 0, fieldCount)
	for i := range s.inputs {
		label := theme.Body.Render(labels[i])
		if i == s.focused {
			label = theme.Selected.Render(labels[i])
		}
		rows = append(rows, label+"\n"+s.inputs[i].View())
	}

	lines := []string{
		theme.Title.Render("Add a Card"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	}

	if s.errMsg != "" {
		lines = append(lines, "", theme.ErrorBox.Render(s.errMsg))
	} else if s.added > 0 {
		lines = append(lines, "", theme.Correct.Render("✓ card saved"))
	}

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return layout.Centered(block, width, height)
}

func (s *AddScreen) Title() string {
	return "Add Card"
}

func (s *AddScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

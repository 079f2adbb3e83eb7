package extras

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/yuchen/hanzideck/internal/progress"
	"github.com/yuchen/hanzideck/internal/screen"
	"github.com/yuchen/hanzideck/internal/screens/shared"
)

func testDeps() *shared.Deps {
	return &shared.Deps{
		Ledger: progress.NewLedger(),
		Log:    zap.NewNop().Sugar(),
	}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestAddScreen_EnterAdvancesFields(t *testing.T) {
	deps := testDeps()
	s := NewAdd(deps)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*AddScreen)

	if ss.focused != fieldPinyin {
		t.Errorf("focused = %d, want pinyin field", ss.focused)
	}
	if len(deps.Ledger.CustomCards) != 0 {
		t.Error("nothing should be saved before the last field")
	}
}

func TestAddScreen_ValidSubmit(t *testing.T) {
	deps := testDeps()
	s := NewAdd(deps)
	s.inputs[fieldChinese].Model.SetValue("猫")
	s.inputs[fieldPinyin].Model.SetValue("māo")
	s.inputs[fieldEnglish].Model.SetValue("cat")
	s.focused = fieldEnglish

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*AddScreen)

	if len(deps.Ledger.CustomCards) != 1 {
		t.Fatalf("custom cards = %d, want 1", len(deps.Ledger.CustomCards))
	}
	if ss.errMsg != "" {
		t.Errorf("unexpected error message %q", ss.errMsg)
	}
	if ss.focused != fieldChinese {
		t.Errorf("focused = %d, want first field after save", ss.focused)
	}
	for i := range ss.inputs {
		if ss.inputs[i].Value() != "" {
			t.Errorf("field %d not cleared: %q", i, ss.inputs[i].Value())
		}
	}
	if cmd == nil {
		t.Error("expected the refocus command to be returned")
	}
}

func TestAddScreen_InvalidShowsError(t *testing.T) {
	deps := testDeps()
	s := NewAdd(deps)
	s.inputs[fieldChinese].Model.SetValue("cat")
	s.inputs[fieldPinyin].Model.SetValue("māo")
	s.inputs[fieldEnglish].Model.SetValue("cat")
	s.focused = fieldEnglish

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*AddScreen)

	if len(deps.Ledger.CustomCards) != 0 {
		t.Error("invalid card must not be saved")
	}
	if ss.errMsg == "" {
		t.Error("expected a validation message")
	}
}

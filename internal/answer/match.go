package answer

import "github.com/yuchen/hanzideck/internal/vocab"

// Mode selects which card field an answer is checked against.
type Mode string

const (
	// ModeUnset matches either field. Not reachable from the UI, where a
	// mode is always chosen before quizzing starts; kept so a future
	// mode-less practice path judges answers sensibly.
	ModeUnset   Mode = ""
	ModeEnglish Mode = "english"
	ModePinyin  Mode = "pinyin"
)

// DisplayName returns the mode label shown in menus and summaries.
func (m Mode) DisplayName() string {
	switch m {
	case ModeEnglish:
		return "English"
	case ModePinyin:
		return "Pinyin"
	default:
		return "Any"
	}
}

// Expected returns the card field the mode quizzes on.
func (m Mode) Expected(c vocab.Card) string {
	switch m {
	case ModePinyin:
		return c.Pinyin
	default:
		return c.English
	}
}

// Check judges input against the card for the given mode. An answer is
// never evaluated against the other field unless the mode is unset.
func Check(c vocab.Card, m Mode, input string) bool {
	switch m {
	case ModeEnglish:
		return Equal(input, c.English)
	case ModePinyin:
		return Equal(input, c.Pinyin)
	default:
		return Equal(input, c.English) || Equal(input, c.Pinyin)
	}
}

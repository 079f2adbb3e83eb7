package vocab

import (
	"errors"
	"strings"
)

// Intake validation errors. Messages are shown verbatim in the add-card
// form and the cards CLI, so they are written for people, not logs.
var (
	ErrEmptyField   = errors.New("all three fields are required")
	ErrNotChinese   = errors.New("the character field must contain Chinese characters only")
	ErrDuplicate    = errors.New("a card with this character and pinyin already exists")
)

// isCJKRune reports whether r falls in the CJK Unified Ideographs or CJK
// Compatibility Ideographs blocks. A coarse sanity filter, not a
// linguistic validator.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0xF900 && r <= 0xFAFF)
}

// IsChinese reports whether s is non-empty and consists solely of CJK
// ideographs.
func IsChinese(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isCJKRune(r) {
			return false
		}
	}
	return true
}

// NewCustomCard validates user-entered fields against the existing custom
// list and returns the card to append. Fields are trimmed before any
// check; validation never mutates existing.
func NewCustomCard(chinese, pinyin, english string, existing []Card) (Card, error) {
	c := Card{
		Chinese: strings.TrimSpace(chinese),
		Pinyin:  strings.TrimSpace(pinyin),
		English: strings.TrimSpace(english),
	}
	if c.Chinese == "" || c.Pinyin == "" || c.English == "" {
		return Card{}, ErrEmptyField
	}
	if !IsChinese(c.Chinese) {
		return Card{}, ErrNotChinese
	}
	for _, ex := range existing {
		if ex.Key() == c.Key() {
			return Card{}, ErrDuplicate
		}
	}
	return c, nil
}

package answer

import (
	"testing"

	"github.com/yuchen/hanzideck/internal/vocab"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bàba", "baba"},
		{"  nǐ  hǎo ", "ni hao"},
		{"ni-hao", "ni hao"},
		{"ni_hao", "ni hao"},
		{"ni.hao", "ni hao"},
		{"To Love", "to love"},
		{"  to   love  ", "to love"},
		{"gāoxìng", "gaoxing"},
		{"", ""},
		{"   ", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Bàba", "  nǐ  hǎo ", "fēi-jī", "To    Love", "电脑"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestNormalizeAccentEquivalence(t *testing.T) {
	if Normalize("Bàba") != Normalize("baba") {
		t.Error(`normalize("Bàba") != normalize("baba")`)
	}
	if Normalize("  nǐ  hǎo ") != Normalize("ni-hao") {
		t.Error(`normalize("  nǐ  hǎo ") != normalize("ni-hao")`)
	}
}

func TestCheck(t *testing.T) {
	card := vocab.Card{Chinese: "爱", Pinyin: "ài", English: "to love"}

	tests := []struct {
		name  string
		mode  Mode
		input string
		want  bool
	}{
		{"pinyin unmarked accepted", ModePinyin, "ai", true},
		{"pinyin tone number rejected", ModePinyin, "ai4", false},
		{"pinyin not judged against english", ModePinyin, "to love", false},
		{"english case insensitive", ModeEnglish, "To Love", true},
		{"english not judged against pinyin", ModeEnglish, "ai", false},
		{"unset matches english", ModeUnset, "to love", true},
		{"unset matches pinyin", ModeUnset, "ai", true},
		{"unset rejects garbage", ModeUnset, "hate", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Check(card, tt.mode, tt.input); got != tt.want {
				t.Errorf("Check(%q, %s) = %v, want %v", tt.input, tt.mode, got, tt.want)
			}
		})
	}
}

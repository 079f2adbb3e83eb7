// Package answer implements the normalization pipeline and the matching
// rule used to judge quiz answers.
package answer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented letters and removes the combining marks,
// so toned pinyin vowels compare equal to their unmarked forms
// ("nǐ" == "ni"). Recomposition keeps non-Latin text intact.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases s, strips diacritical marks, collapses runs of
// whitespace, hyphens, underscores and periods into a single space, and
// trims the result. It is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		if unicode.IsSpace(r) || r == '-' || r == '_' || r == '.' {
			pendingSep = true
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSep = false
		b.WriteRune(r)
	}
	return b.String()
}

// Equal reports whether a user answer matches an expected value after
// normalization of both sides.
func Equal(input, expected string) bool {
	return Normalize(input) == Normalize(expected)
}

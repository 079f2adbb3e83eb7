// Package vocab holds the built-in vocabulary lists and the card and
// level types shared across the application. The four graded tiers are
// embedded at build time; Combined, Review and Extra are derived views,
// never stored on their own.
package vocab

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var dataFS embed.FS

var tiers map[Level][]Card

func init() {
	tiers = make(map[Level][]Card, len(GradedLevels))
	for _, lvl := range GradedLevels {
		cards, err := loadTier(lvl)
		if err != nil {
			panic(fmt.Sprintf("vocab: %v", err))
		}
		tiers[lvl] = cards
	}
}

func loadTier(lvl Level) ([]Card, error) {
	b, err := dataFS.ReadFile(fmt.Sprintf("data/%s.json", lvl))
	if err != nil {
		return nil, fmt.Errorf("read tier %s: %w", lvl, err)
	}
	var cards []Card
	if err := json.Unmarshal(b, &cards); err != nil {
		return nil, fmt.Errorf("parse tier %s: %w", lvl, err)
	}
	return cards, nil
}

// Tier returns the built-in card list for a graded level. Returns nil for
// derived levels.
func Tier(lvl Level) []Card {
	return tiers[lvl]
}

// Combined returns the concatenation of the four graded tiers in their
// fixed order.
func Combined() []Card {
	var all []Card
	for _, lvl := range GradedLevels {
		all = append(all, tiers[lvl]...)
	}
	return all
}

// Cards resolves the live card list for any level. Custom is the
// user-authored card list backing the Extra level; review is the set of
// flagged card keys backing the Review level. The Review view filters the
// built-in combined list, so custom card keys left in the set after a
// deletion elsewhere never surface here.
func Cards(lvl Level, custom []Card, review map[string]bool) []Card {
	switch lvl {
	case LevelCombined:
		return Combined()
	case LevelExtra:
		return custom
	case LevelReview:
		var flagged []Card
		for _, c := range Combined() {
			if review[c.Key()] {
				flagged = append(flagged, c)
			}
		}
		return flagged
	default:
		return tiers[lvl]
	}
}

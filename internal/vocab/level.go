package vocab

// Level identifies a study level: one of the four graded tiers, or a
// derived view (Combined, Review, Extra). The string value doubles as the
// key under which the level's deck state is persisted.
type Level string

const (
	LevelHSK1     Level = "hsk1"
	LevelHSK2     Level = "hsk2"
	LevelHSK3     Level = "hsk3"
	LevelHSK4     Level = "hsk4"
	LevelCombined Level = "all"
	LevelReview   Level = "review"
	LevelExtra    Level = "extra"
)

// GradedLevels lists the four built-in tiers in their fixed order. The
// Combined level concatenates them in this order.
var GradedLevels = []Level{LevelHSK1, LevelHSK2, LevelHSK3, LevelHSK4}

// AllLevels lists every selectable level in display order.
var AllLevels = []Level{
	LevelHSK1, LevelHSK2, LevelHSK3, LevelHSK4,
	LevelCombined, LevelReview, LevelExtra,
}

// DisplayName returns the human-readable level name.
func (l Level) DisplayName() string {
	switch l {
	case LevelHSK1:
		return "HSK 1"
	case LevelHSK2:
		return "HSK 2"
	case LevelHSK3:
		return "HSK 3"
	case LevelHSK4:
		return "HSK 4"
	case LevelCombined:
		return "Combined"
	case LevelReview:
		return "Review"
	case LevelExtra:
		return "Extra"
	default:
		return string(l)
	}
}

// Valid reports whether l names a known level.
func (l Level) Valid() bool {
	switch l {
	case LevelHSK1, LevelHSK2, LevelHSK3, LevelHSK4,
		LevelCombined, LevelReview, LevelExtra:
		return true
	}
	return false
}

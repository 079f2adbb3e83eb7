package vocab

// Card is a single vocabulary entry. Identity is the (Chinese, Pinyin)
// pair; two cards with the same character but different readings are
// distinct entries.
type Card struct {
	Chinese string `json:"chinese"`
	Pinyin  string `json:"pinyin"`
	English string `json:"english"`
}

// keyDelim separates the two identity fields inside a card key. The unit
// separator cannot appear in either field, so keys never collide.
const keyDelim = "\x1f"

// Key returns the composite identity key used for review membership and
// duplicate detection.
func (c Card) Key() string {
	return c.Chinese + keyDelim + c.Pinyin
}

// KeySet builds a membership set from a list of card keys, dropping
// duplicates.
func KeySet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

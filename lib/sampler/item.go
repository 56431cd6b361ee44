package sampler

import (
	"strings"

	"github.com/weit-project/eit-toolkit/lib/annotation"
	"github.com/weit-project/eit-toolkit/lib/lexicon"
)

// Item is an accepted sentence. It is never modified after acceptance.
type Item struct {
	Sentence    string  `json:"sentence"`
	Syllables   int     `json:"syllables"`
	RarestWord  string  `json:"rarest_word"`
	RarestScore float64 `json:"rarest_score"`
	Constraints
}

// ItemSet is append-only. Callers must not rely on the order of Items.
type ItemSet struct {
	items    []Item
	byLength map[int]int
}

func newItemSet(capacity int) *ItemSet {
	return &ItemSet{
		items:    make([]Item, 0, capacity),
		byLength: map[int]int{},
	}
}

func (s *ItemSet) add(item Item) {
	s.items = append(s.items, item)
	s.byLength[item.Syllables]++
}

func (s *ItemSet) CountByLength(syllables int) int {
	return s.byLength[syllables]
}

func (s *ItemSet) Len() int {
	return len(s.items)
}

func (s *ItemSet) Items() []Item {
	res := make([]Item, len(s.items))
	copy(res, s.items)
	return res
}

type Constraints struct {
	NoPropNouns bool `json:"no_prop_nouns"`
	NoNumbers   bool `json:"no_numbers"`
	HasVerb     bool `json:"has_verb"`
	NoAbbrev    bool `json:"no_abbrev"`
}

func (c Constraints) OK() bool {
	return c.NoPropNouns && c.NoNumbers && c.HasVerb && c.NoAbbrev
}

// CheckConstraints evaluates the grammatical gates over all tokens. A token
// containing a period that is not punctuation counts as an abbreviation.
func CheckConstraints(tokens []annotation.Token) Constraints {
	c := Constraints{NoPropNouns: true, NoNumbers: true, NoAbbrev: true}
	for _, token := range tokens {
		switch token.POS {
		case annotation.PROPN:
			c.NoPropNouns = false
		case annotation.NUM:
			c.NoNumbers = false
		case annotation.VERB:
			c.HasVerb = true
		}
		if token.POS != annotation.PUNCT && strings.Contains(token.Text, ".") {
			c.NoAbbrev = false
		}
	}
	return c
}

// RarestWord returns the token with the lowest rarity. Ties keep the first
// token; a sentence without known words yields lexicon.Unknown.
func RarestWord(lex *lexicon.Lexicon, tokens []annotation.Token) (string, float64) {
	word, lowest := "", lexicon.Unknown
	for i, token := range tokens {
		rarity := lex.Rarity(token)
		if i == 0 || rarity < lowest {
			word, lowest = token.Text, rarity
		}
	}
	return word, lowest
}

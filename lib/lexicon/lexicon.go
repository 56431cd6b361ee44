// Package lexicon maps German word forms to a rarity score (mean Zipf
// frequency, lower is rarer).
package lexicon

import (
	"github.com/weit-project/eit-toolkit/lib/annotation"
)

// Unknown is returned for words the lexicon does not contain.
const Unknown float64 = 999

// Lexicon is read-only after construction and safe for concurrent readers.
type Lexicon struct {
	entries map[string]float64
}

func New(entries map[string]float64) *Lexicon {
	copied := make(map[string]float64, len(entries))
	for word, rarity := range entries {
		copied[word] = rarity
	}
	return &Lexicon{entries: copied}
}

func (l *Lexicon) Lookup(word string) float64 {
	if rarity, ok := l.entries[word]; ok {
		return rarity
	}
	return Unknown
}

// Rarity looks up the surface form of token, falling back to its lemma.
func (l *Lexicon) Rarity(token annotation.Token) float64 {
	if rarity := l.Lookup(token.Text); rarity != Unknown {
		return rarity
	}
	return l.Lookup(token.Lemma)
}

func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the underlying mapping.
func (l *Lexicon) Entries() map[string]float64 {
	copied := make(map[string]float64, len(l.entries))
	for word, rarity := range l.entries {
		copied[word] = rarity
	}
	return copied
}

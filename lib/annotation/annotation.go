// Package annotation holds the token model produced by the external NLP pipeline
// (POS tagger, lemmatiser and syllable counter) and the interface used to reach it.
package annotation

import "context"

// POS is a universal dependencies part-of-speech tag.
type POS string

const (
	PROPN POS = "PROPN"
	NUM   POS = "NUM"
	VERB  POS = "VERB"
	PUNCT POS = "PUNCT"
	NOUN  POS = "NOUN"
	AUX   POS = "AUX"
	DET   POS = "DET"
	ADJ   POS = "ADJ"
	ADV   POS = "ADV"
	PRON  POS = "PRON"
)

type Token struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	POS   POS    `json:"pos"`
	// Syllables is nil when the syllable counter had no answer for the token,
	// e.g. for punctuation.
	Syllables *int `json:"syllables"`
}

// Sentence is an annotated sentence. It is derived from the raw text on every call
// to Annotate and never cached.
type Sentence struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

// Syllables sums the syllable counts of all tokens, counting unknown ones as zero.
func (s *Sentence) Syllables() int {
	if s == nil {
		return 0
	}
	sum := 0
	for _, token := range s.Tokens {
		if token.Syllables != nil {
			sum += *token.Syllables
		}
	}
	return sum
}

// Annotator wraps the NLP pipeline. Implementations are configured once for a fixed
// language model and must be safe for concurrent use.
type Annotator interface {
	Annotate(ctx context.Context, sentence string) (*Sentence, error)
}

// SyllableCount annotates sentence and returns the annotation with its syllable sum.
func SyllableCount(ctx context.Context, annotator Annotator, sentence string) (*Sentence, int, error) {
	doc, err := annotator.Annotate(ctx, sentence)
	if err != nil {
		return nil, 0, err
	}
	return doc, doc.Syllables(), nil
}

// Syl is a helper for building tokens with a known syllable count.
func Syl(n int) *int {
	return &n
}

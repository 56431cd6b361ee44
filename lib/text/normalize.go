package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	leadingDash      = regexp.MustCompile(`^- `)
	leadingLineIndex = regexp.MustCompile(`^[0-9]*\t`)
)

// asciiPunctuation is the set of characters stripped before answers are compared.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

/**
	NormalizeSentence cleans one raw corpus line so it can be treated as a candidate item.

	Subtitle and web corpora carry some noise which is removed in this order:
	  - markup such as <i>...</ i> (see StripMarkup)
	  - surrounding whitespace
	  - a leading "- " dialogue marker
	  - ellipses, written either as "..." or ". . .", which become a single space
	  - a leading "<line number>\t" prefix
	  - double spaces

	The result is NFC normalised so that umlauts compare equal to lexicon keys.
**/
func NormalizeSentence(line string) string {
	s := strings.TrimSpace(StripMarkup(line))
	s = leadingDash.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "...", " ")
	s = strings.ReplaceAll(s, ". . .", " ")
	s = leadingLineIndex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "  ", " ")
	return norm.NFC.String(s)
}

// StripPunctuation removes every ASCII punctuation character. Non-ASCII marks such
// as „“ are kept.
func StripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 128 && strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeAnswer is applied to both the original item and the learner's answer before
// they are compared or annotated.
func NormalizeAnswer(s string) string {
	return StripPunctuation(norm.NFC.String(s))
}

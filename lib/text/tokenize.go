package text

import (
	"github.com/blevesearch/segment"
)

// Words splits s into words using unicode word boundaries (UAX #29). Whitespace and
// punctuation segments are dropped, so "schön, und" is two words.
func Words(s string) []string {
	segmenter := segment.NewWordSegmenterDirect([]byte(s))
	var words []string
	for segmenter.Segment() {
		if segmenter.Type() == segment.None {
			continue
		}
		words = append(words, string(segmenter.Bytes()))
	}
	return words
}

// WordCount is len(Words(s)) without keeping the words.
func WordCount(s string) int {
	segmenter := segment.NewWordSegmenterDirect([]byte(s))
	count := 0
	for segmenter.Segment() {
		if segmenter.Type() != segment.None {
			count++
		}
	}
	return count
}

package scoring

import (
	"github.com/weit-project/eit-toolkit/lib/annotation"
	"github.com/weit-project/eit-toolkit/lib/text"
)

// MinimalRepetition flags answers that were abandoned after a few words: fewer
// than half the words of the original.
type MinimalRepetition struct{}

func (m *MinimalRepetition) Name() string { return "Minimal_Repetition_Error" }

func (m *MinimalRepetition) Severity() int { return 0 }

func (m *MinimalRepetition) Evaluate(original, answer string, _, _ *annotation.Sentence) int {
	if float64(text.WordCount(answer)) < float64(text.WordCount(original))/2 {
		return 1
	}
	return 0
}

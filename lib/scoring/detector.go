// Package scoring grades a learner's reproduction of an EIT item on a 0 to 4
// scale with a list of error detectors.
package scoring

import "github.com/weit-project/eit-toolkit/lib/annotation"

// MaxSeverity is the highest severity a detector may have. Severity 0 errors
// disqualify an answer.
const MaxSeverity = 3

// Detector counts one kind of error. Evaluate must not fail: a detector that
// cannot decide returns 0. The annotations are nil when the scorer runs without
// an annotator.
type Detector interface {
	Name() string
	Severity() int
	Evaluate(original, answer string, originalDoc, answerDoc *annotation.Sentence) int
}

// DefaultDetectors returns the detectors in evaluation order.
func DefaultDetectors() []Detector {
	return []Detector{
		&MinimalRepetition{},
	}
}

package scoring

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/weit-project/eit-toolkit/lib/annotation"
	"github.com/weit-project/eit-toolkit/lib/text"
)

const (
	ScoreMin = 0
	ScoreMax = 4
	// ScoreUndetermined is reported when no rule decided the score.
	ScoreUndetermined = -1
)

var (
	ErrInvalidSeverity   = errors.New("detector severity out of range")
	ErrDuplicateDetector = errors.New("duplicate detector name")
)

// Counts holds the error count of every evaluated detector, by severity and name.
type Counts map[int]map[string]int

func newCounts() Counts {
	counts := make(Counts, MaxSeverity+1)
	for severity := 0; severity <= MaxSeverity; severity++ {
		counts[severity] = map[string]int{}
	}
	return counts
}

func (c Counts) Total(severity int) int {
	total := 0
	for _, n := range c[severity] {
		total += n
	}
	return total
}

type Result struct {
	Original string `json:"original"`
	Answer   string `json:"answer"`
	Counts   Counts `json:"counts"`
	Score    int    `json:"score"`
	// Decided is false when the score is ScoreUndetermined.
	Decided bool `json:"decided"`
	// DisqualifiedBy names the severity 0 detector that ended the evaluation.
	DisqualifiedBy string `json:"disqualified_by,omitempty"`
}

// Grader derives a partial credit score from the counts of an answer that was
// neither an exact match nor disqualified. It returns false if it cannot decide.
type Grader interface {
	Grade(counts Counts) (int, bool)
}

type GraderFunc func(counts Counts) (int, bool)

func (f GraderFunc) Grade(counts Counts) (int, bool) {
	return f(counts)
}

type Option func(*Scorer)

func WithGrader(grader Grader) Option {
	return func(s *Scorer) {
		s.grader = grader
	}
}

// Scorer is safe for concurrent use if its annotator and detectors are.
type Scorer struct {
	annotator annotation.Annotator
	detectors []Detector
	grader    Grader
}

// NewScorer validates detectors. A nil annotator passes nil annotations to them.
func NewScorer(annotator annotation.Annotator, detectors []Detector, opts ...Option) (*Scorer, error) {
	names := make(map[string]bool, len(detectors))
	for _, d := range detectors {
		if d.Severity() < 0 || d.Severity() > MaxSeverity {
			return nil, fmt.Errorf("%w: %s has severity %d", ErrInvalidSeverity, d.Name(), d.Severity())
		}
		if names[d.Name()] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDetector, d.Name())
		}
		names[d.Name()] = true
	}

	s := &Scorer{
		annotator: annotator,
		detectors: append([]Detector(nil), detectors...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Scorer) Detectors() []Detector {
	return append([]Detector(nil), s.detectors...)
}

/**
	Score compares answer against original.

	Both are NFC normalised and stripped of ASCII punctuation first. Identical
	strings get ScoreMax without running any detector. Otherwise detectors run in
	order and the first severity 0 detector that leaves a non-zero severity 0
	total ends the evaluation with ScoreMin.
**/
func (s *Scorer) Score(ctx context.Context, original, answer string) (*Result, error) {
	original = text.NormalizeAnswer(original)
	answer = text.NormalizeAnswer(answer)

	result := &Result{
		Original: original,
		Answer:   answer,
		Counts:   newCounts(),
		Score:    ScoreUndetermined,
	}

	if original == answer {
		result.Score = ScoreMax
		result.Decided = true
		return result, nil
	}

	var originalDoc, answerDoc *annotation.Sentence
	if s.annotator != nil {
		var err error
		if originalDoc, err = s.annotator.Annotate(ctx, original); err != nil {
			return nil, fmt.Errorf("annotate original: %w", err)
		}
		if answerDoc, err = s.annotator.Annotate(ctx, answer); err != nil {
			return nil, fmt.Errorf("annotate answer: %w", err)
		}
	}

	for _, d := range s.detectors {
		result.Counts[d.Severity()][d.Name()] = d.Evaluate(original, answer, originalDoc, answerDoc)

		if d.Severity() == 0 && result.Counts.Total(0) > 0 {
			result.Score = ScoreMin
			result.Decided = true
			result.DisqualifiedBy = d.Name()
			log.Debug().Str("detector", d.Name()).Msg("answer disqualified")
			return result, nil
		}
	}

	if s.grader != nil {
		if score, ok := s.grader.Grade(result.Counts); ok && score >= ScoreMin && score <= ScoreMax {
			result.Score = score
			result.Decided = true
		}
	}
	return result, nil
}

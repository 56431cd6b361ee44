// Package sampler selects EIT items from a corpus by rejection sampling: random
// draws without replacement are annotated and kept only if they pass every gate.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/weit-project/eit-toolkit/lib/annotation"
	"github.com/weit-project/eit-toolkit/lib/blocklist"
	"github.com/weit-project/eit-toolkit/lib/category"
	"github.com/weit-project/eit-toolkit/lib/lexicon"
)

const DefaultChunks = 6

var ErrInvalidArguments = errors.New("invalid sampling arguments")

// ExhaustionError is returned when every corpus sentence has been tried before all
// length buckets were filled.
type ExhaustionError struct {
	Checked int
	Found   int
	Target  int
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("corpus exhausted: checked all %d sentences and found %d of %d items", e.Checked, e.Found, e.Target)
}

// Reason names the gate a draw failed.
type Reason string

const (
	RejectAnnotation  Reason = "annotation"
	RejectLength      Reason = "length"
	RejectBucketFull  Reason = "bucket_full"
	RejectUnknownWord Reason = "unknown_word"
	RejectRarity      Reason = "rarity"
	RejectConstraints Reason = "constraints"
	RejectBlocklist   Reason = "blocklist"
)

type Stats struct {
	RunID    string         `json:"run_id"`
	Cycles   int            `json:"cycles"`
	Accepted int            `json:"accepted"`
	Rejected map[Reason]int `json:"rejected"`
	Duration time.Duration  `json:"duration"`
}

type Option func(*Sampler)

func WithBoundaries(boundaries category.Boundaries) Option {
	return func(s *Sampler) {
		s.boundaries = boundaries
	}
}

func WithChunks(chunks int) Option {
	return func(s *Sampler) {
		s.chunks = chunks
	}
}

// WithRand sets the source of draw order. A fixed seed gives a reproducible run
// for a fixed corpus and annotator.
func WithRand(r *rand.Rand) Option {
	return func(s *Sampler) {
		s.rand = r
	}
}

func WithBlocklist(bl *blocklist.Blocklist) Option {
	return func(s *Sampler) {
		s.blocklist = bl
	}
}

// Sampler may be shared. Every SelectItems call owns its pool and ItemSet.
type Sampler struct {
	annotator  annotation.Annotator
	lex        *lexicon.Lexicon
	boundaries category.Boundaries
	chunks     int
	blocklist  *blocklist.Blocklist

	randMut sync.Mutex
	rand    *rand.Rand
}

func New(annotator annotation.Annotator, lex *lexicon.Lexicon, opts ...Option) *Sampler {
	s := &Sampler{
		annotator:  annotator,
		lex:        lex,
		boundaries: category.DefaultBoundaries(),
		chunks:     DefaultChunks,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

func (s *Sampler) intn(n int) int {
	s.randMut.Lock()
	defer s.randMut.Unlock()
	return s.rand.Intn(n)
}

// run is the state of one SelectItems call.
type run struct {
	id         string
	corpus     []string
	pool       []int
	items      *ItemSet
	categories category.Categories
	minLen     int
	maxLen     int
	perLength  int
	stats      Stats
}

/**
	SelectItems draws sentences from corpus until every syllable length in
	[minLen, maxLen] holds perLength items.

	Each corpus index is tried at most once. A draw is discarded as soon as one
	gate fails, in this order: length range and bucket fill, unknown rarest word,
	rarity interval of the length's category, grammatical constraints, blocklist.
	A failing annotation only discards the draw.

	On exhaustion the partial ItemSet is returned together with an *ExhaustionError.
**/
func (s *Sampler) SelectItems(ctx context.Context, corpus []string, minLen, maxLen, perLength int) (*ItemSet, Stats, error) {
	if len(corpus) == 0 || minLen > maxLen || perLength < 1 || minLen < 0 {
		return nil, Stats{}, fmt.Errorf("%w: %d sentences, lengths [%d, %d], %d per length", ErrInvalidArguments, len(corpus), minLen, maxLen, perLength)
	}

	categories, err := category.Build(minLen, maxLen, s.chunks)
	if err != nil {
		return nil, Stats{}, err
	}
	if err := s.boundaries.Validate(categories); err != nil {
		return nil, Stats{}, err
	}

	target := (maxLen - minLen + 1) * perLength
	r := &run{
		id:         uuid.New().String(),
		corpus:     corpus,
		pool:       make([]int, len(corpus)),
		items:      newItemSet(target),
		categories: categories,
		minLen:     minLen,
		maxLen:     maxLen,
		perLength:  perLength,
	}
	for i := range r.pool {
		r.pool[i] = i
	}
	r.stats.RunID = r.id
	r.stats.Rejected = map[Reason]int{}

	start := time.Now()

	log.Info().Str("run_id", r.id).Int("corpus", len(corpus)).Int("target", target).Msg("selecting items")

	for r.items.Len() < target {
		if err := ctx.Err(); err != nil {
			return r.items, r.finish(start), err
		}
		if len(r.pool) == 0 {
			return r.items, r.finish(start), &ExhaustionError{Checked: len(corpus), Found: r.items.Len(), Target: target}
		}

		r.stats.Cycles++
		item, reason, err := s.try(ctx, r, r.draw(s.intn(len(r.pool))))
		if err != nil {
			return r.items, r.finish(start), err
		}
		if reason != "" {
			r.stats.Rejected[reason]++
			continue
		}

		r.items.add(item)
		r.stats.Accepted++
		log.Info().
			Str("run_id", r.id).
			Int("syllables", item.Syllables).
			Msg(fmt.Sprintf("item of length %d has been added (%d/%d)", item.Syllables, r.items.CountByLength(item.Syllables), perLength))
	}

	stats := r.finish(start)
	log.Info().Str("run_id", r.id).Int("cycles", stats.Cycles).Int("items", r.items.Len()).Dur("duration", stats.Duration).Msg("all items found")
	return r.items, stats, nil
}

func (r *run) finish(start time.Time) Stats {
	r.stats.Duration = time.Since(start)
	stats := r.stats
	stats.Rejected = make(map[Reason]int, len(r.stats.Rejected))
	for k, v := range r.stats.Rejected {
		stats.Rejected[k] = v
	}
	return stats
}

// draw removes the pool entry at position i and returns its corpus index.
func (r *run) draw(i int) int {
	index := r.pool[i]
	last := len(r.pool) - 1
	r.pool[i] = r.pool[last]
	r.pool = r.pool[:last]
	return index
}

// try runs the gates for one corpus index. A non-empty reason means the draw was rejected.
func (s *Sampler) try(ctx context.Context, r *run, index int) (Item, Reason, error) {
	sentence := r.corpus[index]

	doc, syllables, err := annotation.SyllableCount(ctx, s.annotator, sentence)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Item{}, "", ctxErr
		}
		log.Warn().Err(err).Str("run_id", r.id).Int("index", index).Msg("could not annotate sentence")
		return Item{}, RejectAnnotation, nil
	}
	if doc == nil {
		log.Warn().Str("run_id", r.id).Int("index", index).Msg("annotation service returned no annotation")
		return Item{}, RejectAnnotation, nil
	}

	reject := func(reason Reason) (Item, Reason, error) {
		log.Debug().Str("run_id", r.id).Int("index", index).Int("syllables", syllables).Str("reason", string(reason)).Msg("rejected")
		return Item{}, reason, nil
	}

	if syllables < r.minLen || syllables > r.maxLen {
		return reject(RejectLength)
	}
	if r.items.CountByLength(syllables) >= r.perLength {
		return reject(RejectBucketFull)
	}

	word, rarity := RarestWord(s.lex, doc.Tokens)
	if rarity == lexicon.Unknown {
		return reject(RejectUnknownWord)
	}
	interval, ok := s.boundaries.Interval(r.categories, syllables)
	if !ok || !interval.Contains(rarity) {
		return reject(RejectRarity)
	}

	constraints := CheckConstraints(doc.Tokens)
	if !constraints.OK() {
		return reject(RejectConstraints)
	}

	if s.blocklist != nil {
		if allowed, _ := s.blocklist.AllowedTokens(doc.Tokens); !allowed {
			return reject(RejectBlocklist)
		}
	}

	return Item{
		Sentence:    sentence,
		Syllables:   syllables,
		RarestWord:  word,
		RarestScore: rarity,
		Constraints: constraints,
	}, "", nil
}

// Package category splits a range of sentence lengths into contiguous groups
// and maps each group to the rarity band its rarest word must fall into.
package category

import (
	"errors"
	"fmt"
)

var ErrInvalidRange = errors.New("invalid category range")

// Categories maps a sentence length to its group index.
type Categories map[int]int

// Build splits [min, max] into chunks contiguous groups. Sizes differ by at
// most one and the earliest groups take the remainder. When chunks exceeds the
// number of lengths the trailing groups stay empty.
func Build(min, max, chunks int) (Categories, error) {
	if min > max {
		return nil, fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, min, max)
	}
	if chunks < 1 {
		return nil, fmt.Errorf("%w: %d chunks", ErrInvalidRange, chunks)
	}

	total := max - min + 1
	size, remainder := total/chunks, total%chunks

	categories := make(Categories, total)
	length := min
	for index := 0; index < chunks; index++ {
		n := size
		if index < remainder {
			n++
		}
		for i := 0; i < n; i++ {
			categories[length] = index
			length++
		}
	}
	return categories, nil
}

// Count is the number of non-empty groups.
func (c Categories) Count() int {
	highest := -1
	for _, index := range c {
		if index > highest {
			highest = index
		}
	}
	return highest + 1
}

// Interval is an inclusive rarity band.
type Interval struct {
	Low  float64 `mapstructure:"low" yaml:"low" json:"low"`
	High float64 `mapstructure:"high" yaml:"high" json:"high"`
}

func (i Interval) Contains(v float64) bool {
	return v >= i.Low && v <= i.High
}

// Boundaries holds one interval per group index.
type Boundaries []Interval

// DefaultBoundaries is the table used for the German EIT item pool.
func DefaultBoundaries() Boundaries {
	return Boundaries{
		{Low: 6, High: 8},
		{Low: 5, High: 7},
		{Low: 4, High: 6},
		{Low: 3, High: 5},
		{Low: 1.5, High: 3.5},
		{Low: 0, High: 2.25},
	}
}

type MissingIntervalError struct {
	Index int
}

func (e *MissingIntervalError) Error() string {
	return fmt.Sprintf("no rarity interval configured for category %d", e.Index)
}

// Validate fails if any group produced by categories has no interval.
func (b Boundaries) Validate(categories Categories) error {
	if count := categories.Count(); count > len(b) {
		return &MissingIntervalError{Index: len(b)}
	}
	for _, interval := range b {
		if interval.Low > interval.High {
			return fmt.Errorf("%w: interval [%v, %v]", ErrInvalidRange, interval.Low, interval.High)
		}
	}
	return nil
}

// Interval returns the band for sentences of the given length.
func (b Boundaries) Interval(categories Categories, length int) (Interval, bool) {
	index, ok := categories[length]
	if !ok || index >= len(b) {
		return Interval{}, false
	}
	return b[index], true
}

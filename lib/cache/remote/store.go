package remote

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/weit-project/eit-toolkit/lib/cache"
)

const DefaultBatchSize = 1000

// ErrNotReady is returned when the backend does not answer its readiness probe.
var ErrNotReady = errors.New("remote cache is not ready")

// NewStore adapts a pipelined remote client to cache.Client, flushing a
// pipeline every batchSize entries.
func NewStore(client Client, batchSize int) cache.Client {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &store{client: client, batchSize: batchSize}
}

type store struct {
	client    Client
	batchSize int
}

func (s *store) Exists() bool {
	return s.client.Ready() && s.client.Exists()
}

func (s *store) Save(entries map[string]float64) error {
	if !s.client.Ready() {
		return ErrNotReady
	}
	if err := s.client.Clear(); err != nil {
		return fmt.Errorf("clear remote cache: %w", err)
	}

	pipe := s.client.NewSetPipeline(s.batchSize)
	batches := 0
	for word, rarity := range entries {
		pipe.Set(word, rarity)
		if pipe.Size() >= s.batchSize {
			if err := pipe.ExecSet(); err != nil {
				return err
			}
			batches++
			log.Debug().Int("batch", batches).Msg("flushed lexicon batch")
			pipe = s.client.NewSetPipeline(s.batchSize)
		}
	}
	if pipe.Size() > 0 {
		if err := pipe.ExecSet(); err != nil {
			return err
		}
		batches++
	}

	log.Info().Int("entries", len(entries)).Int("batches", batches).Msg("saved lexicon to remote cache")
	return nil
}

func (s *store) Load() (map[string]float64, error) {
	if !s.client.Ready() {
		return nil, ErrNotReady
	}
	if !s.client.Exists() {
		return nil, cache.ErrNotFound
	}

	entries := make(map[string]float64)
	err := s.client.Scan(func(word string, rarity float64) error {
		entries[word] = rarity
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, cache.ErrNotFound
	}
	return entries, nil
}

package lexicon

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/weit-project/eit-toolkit/lib/cache"
)

// ErrCacheMissing is returned when a precompiled lexicon is requested but none was saved.
var ErrCacheMissing = errors.New("precompiled lexicon not found")

type Config struct {
	Path        string  `mapstructure:"path"`
	Format      Format  `mapstructure:"format"`
	Sheet       string  `mapstructure:"sheet"`
	Columns     Columns `mapstructure:"columns"`
	Precompiled bool    `mapstructure:"precompiled"`
}

// Load builds the lexicon. A precompiled lexicon comes straight from client;
// otherwise the source at conf.Path is compiled and, if client is set, saved to it.
func Load(conf Config, client cache.Client) (*Lexicon, error) {
	if conf.Precompiled {
		if client == nil {
			return nil, fmt.Errorf("precompiled lexicon requested without a cache: %w", ErrCacheMissing)
		}
		entries, err := client.Load()
		if errors.Is(err, cache.ErrNotFound) {
			return nil, ErrCacheMissing
		} else if err != nil {
			return nil, fmt.Errorf("load precompiled lexicon: %w", err)
		}
		log.Info().Int("entries", len(entries)).Msg("loaded precompiled lexicon")
		return New(entries), nil
	}

	lex, err := Compile(conf)
	if err != nil {
		return nil, err
	}

	if client != nil {
		if err := client.Save(lex.entries); err != nil {
			return nil, fmt.Errorf("save lexicon cache: %w", err)
		}
	}
	return lex, nil
}

// Compile reads the lexicon source described by conf.
func Compile(conf Config) (*Lexicon, error) {
	columns := conf.Columns
	defaults := DefaultColumns()
	if columns.Word == "" {
		columns.Word = defaults.Word
	}
	if columns.SpellCheck == "" {
		columns.SpellCheck = defaults.SpellCheck
	}
	if columns.Subtlex == "" {
		columns.Subtlex = defaults.Subtlex
	}
	if columns.Google == "" {
		columns.Google = defaults.Google
	}

	reader, err := NewReader(conf.Format, columns, conf.Sheet)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(conf.Path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", conf.Path, err)
	}
	defer file.Close()

	entries := make(map[string]float64)
	err = ReadWithCallback(file, reader, func(row Row) error {
		entries[row.Word] = row.Rarity
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", conf.Path, err)
	}

	log.Info().Str("path", conf.Path).Int("entries", len(entries)).Msg("compiled lexicon")
	return &Lexicon{entries: entries}, nil
}

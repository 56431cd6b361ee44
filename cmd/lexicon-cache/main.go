package main

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/weit-project/eit-toolkit/lib"
	"github.com/weit-project/eit-toolkit/lib/cache"
	"github.com/weit-project/eit-toolkit/lib/cache/backend"
	"github.com/weit-project/eit-toolkit/lib/cache/remote"
	"github.com/weit-project/eit-toolkit/lib/lexicon"
)

// config structure
type lexiconCacheConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	Lexicon        lexicon.Config
	Cache          backend.Config
	// ReadyTimeout bounds how long a remote backend may take to come up.
	ReadyTimeout time.Duration `mapstructure:"ready_timeout"`
}

var config lexiconCacheConfig

func initConfig() {
	// initialise config with defaults.
	err := lib.InitializeConfig("./config/lexicon-cache.yml", map[string]interface{}{
		"log_level":     "info",
		"ready_timeout": "2m",
		"lexicon": map[string]interface{}{
			"path":   "./lexicon/ZipfLexicon.xlsx",
			"format": lexicon.XlsxFormat,
		},
		"cache": backend.Defaults(),
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func main() {
	initConfig()

	client, err := backend.New(config.Cache)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	if client == nil {
		log.Fatal().Msg("cache type none leaves nothing to precompile to")
	}

	lex, err := lexicon.Compile(config.Lexicon)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	if err := save(client, lex.Entries(), config.ReadyTimeout); err != nil {
		log.Fatal().Err(err).Send()
	}
	log.Info().Str("cache", string(config.Cache.Type)).Int("entries", lex.Len()).Msg("lexicon precompiled")
}

// save retries while the backend is not ready yet.
func save(client cache.Client, entries map[string]float64, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		err := client.Save(entries)
		if !errors.Is(err, remote.ErrNotReady) || time.Now().After(deadline) {
			return err
		}
		log.Info().Msg("cache backend is not ready, waiting...")
		time.Sleep(10 * time.Second)
	}
}

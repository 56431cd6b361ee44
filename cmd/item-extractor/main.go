package main

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/weit-project/eit-toolkit/lib"
	"github.com/weit-project/eit-toolkit/lib/annotation"
	http_annotator "github.com/weit-project/eit-toolkit/lib/annotation/http-annotator"
	"github.com/weit-project/eit-toolkit/lib/blocklist"
	"github.com/weit-project/eit-toolkit/lib/cache/backend"
	"github.com/weit-project/eit-toolkit/lib/category"
	"github.com/weit-project/eit-toolkit/lib/corpus"
	"github.com/weit-project/eit-toolkit/lib/export"
	"github.com/weit-project/eit-toolkit/lib/lexicon"
	"github.com/weit-project/eit-toolkit/lib/sampler"
)

// config structure
type itemExtractorConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	Lexicon        lexicon.Config
	Cache          backend.Config
	Annotation     struct {
		Url     string
		Timeout time.Duration
	}
	Corpus struct {
		Paths []string
	}
	Selection struct {
		MinLength int `mapstructure:"min_length"`
		MaxLength int `mapstructure:"max_length"`
		PerLength int `mapstructure:"per_length"`
		Chunks    int
		// Seed 0 seeds from the clock.
		Seed       int64
		Boundaries []category.Interval
	}
	Blocklist struct {
		Path string
	}
	Output export.Options
}

var config itemExtractorConfig

func defaultBoundaries() []map[string]interface{} {
	var res []map[string]interface{}
	for _, interval := range category.DefaultBoundaries() {
		res = append(res, map[string]interface{}{"low": interval.Low, "high": interval.High})
	}
	return res
}

func initConfig() {
	// Set default config values
	err := lib.InitializeConfig("./config/item-extractor.yml", map[string]interface{}{
		"log_level": "info",
		"lexicon": map[string]interface{}{
			"path":        "./lexicon/ZipfLexicon.xlsx",
			"format":      lexicon.XlsxFormat,
			"precompiled": false,
		},
		"cache": backend.Defaults(),
		"annotation": map[string]interface{}{
			"url":     "http://localhost:8081/annotate",
			"timeout": "30s",
		},
		"corpus": map[string]interface{}{
			"paths": []string{"./corpus/OpenSubtitles.tok", "./corpus/deu-com_web_2021_10K-sentences.txt"},
		},
		"selection": map[string]interface{}{
			"min_length": 7,
			"max_length": 30,
			"per_length": 5,
			"chunks":     sampler.DefaultChunks,
			"seed":       0,
			"boundaries": defaultBoundaries(),
		},
		"output": map[string]interface{}{
			"path":   "./output.xlsx",
			"format": export.XlsxFormat,
			"sheet":  export.DefaultSheet,
		},
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func main() {
	initConfig()
	start := time.Now()

	ctx, cancel := lib.HandleInterrupt(context.Background())
	defer cancel()

	annotator := http_annotator.NewClient(http_annotator.Config{
		Url:     config.Annotation.Url,
		Timeout: config.Annotation.Timeout,
	})

	items, stats, err := run(ctx, config, annotator)
	var exhausted *sampler.ExhaustionError
	if errors.As(err, &exhausted) {
		log.Fatal().Err(err).Int("checked", exhausted.Checked).Int("found", exhausted.Found).Msg("a larger corpus is needed")
	} else if err != nil {
		log.Fatal().Err(err).Send()
	}

	if err := export.Write(items.Items(), config.Output); err != nil {
		log.Fatal().Err(err).Send()
	}

	log.Info().
		Int("cycles", stats.Cycles).
		Interface("rejected", stats.Rejected).
		Dur("elapsed", time.Since(start)).
		Msg("program ended")
}

// run loads every input named by conf and selects the items.
func run(ctx context.Context, conf itemExtractorConfig, annotator annotation.Annotator) (*sampler.ItemSet, sampler.Stats, error) {
	cacheClient, err := backend.New(conf.Cache)
	if err != nil {
		return nil, sampler.Stats{}, err
	}
	lex, err := lexicon.Load(conf.Lexicon, cacheClient)
	if err != nil {
		return nil, sampler.Stats{}, err
	}

	sentences, err := corpus.Load(conf.Corpus.Paths...)
	if err != nil {
		return nil, sampler.Stats{}, err
	}

	seed := conf.Selection.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", seed).Msg("random seed")

	opts := []sampler.Option{
		sampler.WithRand(rand.New(rand.NewSource(seed))),
	}
	if conf.Selection.Chunks > 0 {
		opts = append(opts, sampler.WithChunks(conf.Selection.Chunks))
	}
	if len(conf.Selection.Boundaries) > 0 {
		opts = append(opts, sampler.WithBoundaries(conf.Selection.Boundaries))
	}
	if conf.Blocklist.Path != "" {
		bl, err := blocklist.Load(conf.Blocklist.Path)
		if err != nil {
			return nil, sampler.Stats{}, err
		}
		opts = append(opts, sampler.WithBlocklist(bl))
	}

	s := sampler.New(annotator, lex, opts...)
	return s.SelectItems(ctx, sentences, conf.Selection.MinLength, conf.Selection.MaxLength, conf.Selection.PerLength)
}

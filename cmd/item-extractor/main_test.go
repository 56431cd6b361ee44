package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weit-project/eit-toolkit/lib/annotation"
	"github.com/weit-project/eit-toolkit/lib/cache"
	"github.com/weit-project/eit-toolkit/lib/category"
	"github.com/weit-project/eit-toolkit/lib/export"
	"github.com/weit-project/eit-toolkit/lib/lexicon"
	"github.com/weit-project/eit-toolkit/lib/testhelpers"
)

const lexiconSource = "Word\tspell-check OK (1/0)\tZipfSUBTLEX\tZipfGoogle\n" +
	"er\t1\t6.4\t6.6\n" +
	"gehen\t1\t6\t6\n" +
	"Haus\t1\t5\t5\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig(t *testing.T) (itemExtractorConfig, *testhelpers.Annotator) {
	dir := t.TempDir()
	annotator := testhelpers.NewAnnotator()

	var lines []string
	for i := 0; i < 6; i++ {
		sentence := fmt.Sprintf("Er geht %d.", i)
		lines = append(lines, "- "+sentence)
		annotator.Add(sentence,
			testhelpers.Tok("Er", "er", annotation.PRON, 1),
			testhelpers.Tok("geht", "gehen", annotation.VERB, 1),
			testhelpers.Tok("Haus", "Haus", annotation.NOUN, 1+i%2),
			testhelpers.Tok(".", ".", annotation.PUNCT, -1),
		)
	}

	var conf itemExtractorConfig
	conf.Lexicon = lexicon.Config{Path: writeFile(t, dir, "lexicon.tsv", lexiconSource), Format: lexicon.TsvFormat}
	conf.Cache.Type = cache.File
	conf.Cache.Path = filepath.Join(dir, "lexicon.msgpack")
	conf.Corpus.Paths = []string{writeFile(t, dir, "corpus.txt", strings.Join(lines, "\n"))}
	conf.Selection.MinLength = 3
	conf.Selection.MaxLength = 4
	conf.Selection.PerLength = 2
	conf.Selection.Chunks = 2
	conf.Selection.Seed = 42
	conf.Selection.Boundaries = []category.Interval{{Low: 4, High: 6}, {Low: 4, High: 6}}
	conf.Output = export.Options{Path: filepath.Join(dir, "output.tsv"), Format: export.TsvFormat}
	return conf, annotator
}

func TestRun(t *testing.T) {
	conf, annotator := testConfig(t)

	items, stats, err := run(context.Background(), conf, annotator)
	require.NoError(t, err)
	assert.Equal(t, 2, items.CountByLength(3))
	assert.Equal(t, 2, items.CountByLength(4))
	assert.Equal(t, 4, stats.Accepted)

	require.NoError(t, export.Write(items.Items(), conf.Output))
	b, err := os.ReadFile(conf.Output.Path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(b)), "\n"), 5)

	// the compiled lexicon was cached and can be reused
	conf.Lexicon.Precompiled = true
	conf.Lexicon.Path = ""
	_, _, err = run(context.Background(), conf, annotator)
	assert.NoError(t, err)
}

func TestRun_Blocklist(t *testing.T) {
	conf, annotator := testConfig(t)
	conf.Blocklist.Path = writeFile(t, t.TempDir(), "blocklist.yml", "case_insensitive:\n  - haus\n")

	_, stats, err := run(context.Background(), conf, annotator)
	assert.Error(t, err)
	assert.Equal(t, 6, stats.Cycles)
}

func TestRun_MissingInterval(t *testing.T) {
	conf, annotator := testConfig(t)
	conf.Selection.Boundaries = []category.Interval{{Low: 0, High: 8}}

	_, _, err := run(context.Background(), conf, annotator)
	var missing *category.MissingIntervalError
	assert.ErrorAs(t, err, &missing)
}

func TestDefaultBoundaries(t *testing.T) {
	assert.Len(t, defaultBoundaries(), len(category.DefaultBoundaries()))
	assert.Equal(t, 2.25, defaultBoundaries()[5]["high"])
}

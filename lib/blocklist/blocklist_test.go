package blocklist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weit-project/eit-toolkit/lib/annotation"
)

func TestBlocklist(t *testing.T) {
	var testBlocklist = Blocklist{
		CaseSensitive: map[string]bool{
			"Arsch": true,
		},
		CaseInsensitive: map[string]bool{
			"scheiße": true,
		},
	}

	assert.False(t, testBlocklist.Allowed("Scheiße"))
	assert.False(t, testBlocklist.Allowed("SCHEIßE"))

	assert.False(t, testBlocklist.Allowed("Arsch"))
	assert.True(t, testBlocklist.Allowed("arsch"))

	assert.True(t, testBlocklist.Allowed("Haus"))
}

func TestBlocklist_ZeroValueAllowsEverything(t *testing.T) {
	var empty Blocklist
	assert.True(t, empty.Allowed("Scheiße"))
	assert.Equal(t, 0, empty.Len())

	ok, _ := empty.AllowedTokens([]annotation.Token{{Text: "Haus", Lemma: "Haus"}})
	assert.True(t, ok)
}

func TestBlocklist_AllowedTokens(t *testing.T) {
	testBlocklist := Blocklist{CaseInsensitive: map[string]bool{"töten": true}}

	ok, word := testBlocklist.AllowedTokens([]annotation.Token{
		{Text: "Er", Lemma: "er"},
		{Text: "tötete", Lemma: "töten"},
	})
	assert.False(t, ok)
	assert.Equal(t, "töten", word)

	ok, _ = testBlocklist.AllowedTokens([]annotation.Token{{Text: "Er", Lemma: "er"}, {Text: "lacht", Lemma: "lachen"}})
	assert.True(t, ok)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocklist.yml")
	require.NoError(t, os.WriteFile(path, []byte("case_sensitive:\n  - Arsch\ncase_insensitive:\n  - Scheiße\n"), 0o644))

	bl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bl.Len())
	assert.False(t, bl.Allowed("scheiße"))
	assert.False(t, bl.Allowed("Arsch"))
	assert.True(t, bl.Allowed("arsch"))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("case_sensitive: [unterminated"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

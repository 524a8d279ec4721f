package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/paradigm"
)

var structured = []paradigm.LexicalEntry{
	{Lemma: "rosa", PartOfSpeech: "noun", Declension: "1", Gender: "f", Genitive: "rosae"},
	{
		Lemma: "domus", PartOfSpeech: "noun", Declension: "4", Gender: "f", Genitive: "domus",
		Overrides: map[string]string{"abl_sg": "domo", "loc_sg": "domi"},
	},
	{ID: "amo", Lemma: "amo", PartOfSpeech: "verb", Conjugation: "1", PrincipalParts: "amo, amare, amavi, amatum"},
}

func TestLoadStructured(t *testing.T) {
	for _, name := range []string{"sample.yaml", "sample.toml", "sample.json"} {
		t.Run(name, func(t *testing.T) {
			got, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			if diff := cmp.Diff(structured, got); diff != "" {
				t.Errorf("Load(%s) mismatch (-want +got):\n%s", name, diff)
			}
		})
	}
}

func TestLoadLines(t *testing.T) {
	got, err := Load(filepath.Join("testdata", "sample.la"))
	require.NoError(t, err)
	require.Len(t, got, 9)

	assert.Equal(t, structured[0], got[0])
	assert.True(t, got[1].Parisyllabic)
	assert.Equal(t, "m/f", got[1].Gender)
	assert.Equal(t, structured[1], got[2])
	assert.True(t, got[3].Invariable)
	assert.Equal(t, "boni", got[4].Genitive)
	assert.Equal(t, paradigm.LexicalEntry{Lemma: "hic", PartOfSpeech: "pronoun"}, got[5])
	assert.Equal(t, "amo, amare, amavi, amatum", got[6].PrincipalParts)
	assert.Equal(t, "volo2", got[7].ID)
	assert.Equal(t, "volo", got[7].Lemma)
	assert.Equal(t, "1", got[7].Conjugation)

	for _, e := range got {
		assert.NoError(t, e.Validate(), e.Ref())
	}
}

func TestParseLinesErrors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"rosa", "line 1"},
		{"rosa|thing", "part of speech"},
		{"rosa|noun|1|f|rosae|fancy", "unknown flag"},
		{"rosa|noun|1|f|rosae||abl_sg", "key=form"},
		{"a|noun|1|f|b|||extra", "at most"},
	}
	for _, tt := range tests {
		_, err := ParseLines(strings.NewReader(tt.line))
		if assert.Error(t, err, tt.line) {
			assert.Contains(t, err.Error(), tt.want)
		}
	}
}

func TestFormatLine(t *testing.T) {
	entries, err := Load(filepath.Join("testdata", "sample.la"))
	require.NoError(t, err)

	var lines []string
	for _, e := range entries {
		lines = append(lines, FormatLine(e))
	}
	again, err := ParseLines(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	if diff := cmp.Diff(entries, again); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "domus|noun|4|f|domus||abl_sg=domo;loc_sg=domi", FormatLine(entries[2]))
	assert.Equal(t, "hic|pronoun", FormatLine(entries[5]))
}

func TestLoadPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.la"), []byte("amo|verb|1||amo, amare\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.la"), []byte("rosa|noun|1|f|rosae\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	got, err := LoadPaths(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "rosa", got[0].Lemma)
	assert.Equal(t, "amo", got[1].Lemma)

	_, err = LoadPaths(filepath.Join(dir, "missing.la"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Parse(".csv", nil)
	assert.Error(t, err)

	_, err = Parse(".json", []byte("{"))
	assert.Error(t, err)
}

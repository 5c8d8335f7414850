package romkan

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanaime/internal/composing"
)

func TestBuiltinTables(t *testing.T) {
	for _, table := range []*Table{Hiragana, FullKatakana, HalfKatakana} {
		t.Run(table.Name(), func(t *testing.T) {
			require.Greater(t, table.Len(), 300)
			for _, k := range table.Keys() {
				assert.LessOrEqual(t, utf8.RuneCountInString(k), MaxKeyLength, "key %q", k)
				assert.Equal(t, strings.ToLower(k), k, "key %q", k)
			}
			_, ok := table.Lookup("ka")
			assert.True(t, ok)
			_, ok = table.Lookup("q")
			assert.False(t, ok)
		})
	}
}

func TestLoadTable(t *testing.T) {
	doc := `{"name": "old-kana", "base": "hiragana", "entries": {"wi": "ゐ", "we": "ゑ"}}`

	table, err := LoadTable(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "old-kana", table.Name())
	assert.Equal(t, Hiragana.Len(), table.Len())

	v, ok := table.Lookup("wi")
	require.True(t, ok)
	assert.Equal(t, "ゐ", v)
	v, _ = table.Lookup("ka")
	assert.Equal(t, "か", v)

	// the built-in table is untouched
	v, _ = Hiragana.Lookup("wi")
	assert.NotEqual(t, "ゐ", v)
}

func TestLoadTableRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing entries", `{"name": "x"}`},
		{"long key", `{"name": "x", "entries": {"abcde": "あ"}}`},
		{"uppercase key", `{"name": "x", "entries": {"Ka": "か"}}`},
		{"empty value", `{"name": "x", "entries": {"ka": ""}}`},
		{"unknown base", `{"name": "x", "base": "greek", "entries": {}}`},
		{"unknown field", `{"name": "x", "entries": {}, "extra": 1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadTable(strings.NewReader(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadTableConverts(t *testing.T) {
	table, err := LoadTable(strings.NewReader(`{"name": "tiny", "entries": {"q": "く"}}`))
	require.NoError(t, err)

	text := typeRomaji(t, NewRomajiConverter(table), "qa")
	assert.Equal(t, "くa", text.String(composing.LayerLetters))
}

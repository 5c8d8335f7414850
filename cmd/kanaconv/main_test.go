package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanaime/internal/config"
	"kanaime/internal/keymode"
	"kanaime/internal/logging"
	"kanaime/internal/romkan"
)

func convertWith(t *testing.T, cfg *config.Config, opts options, input string) string {
	t.Helper()
	log := logging.NewWithWriter(&logging.Config{Level: logging.LevelDebug}, io.Discard)
	var out bytes.Buffer
	require.NoError(t, run(cfg, opts, strings.NewReader(input), &out, log))
	return out.String()
}

func convert(t *testing.T, opts options, input string) string {
	t.Helper()
	return convertWith(t, config.DefaultConfig(), opts, input)
}

func TestRunModes(t *testing.T) {
	tests := []struct {
		mode keymode.KeyMode
		in   string
		want string
	}{
		{keymode.FullHiragana, "nihongo\nkyakka\n", "にほんご\nきゃっか\n"},
		{keymode.FullKatakana, "tokyo", "トキョ\n"},
		{keymode.HalfKatakana, "ga", "ｶﾞ\n"},
		{keymode.FullAlphabet, "abc", "ａｂｃ\n"},
		{keymode.HalfAlphabet, "a b", "a b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, convert(t, options{mode: tt.mode}, tt.in))
		})
	}
}

func TestRunSpaceCommitsReading(t *testing.T) {
	assert.Equal(t, "かか\n", convert(t, options{mode: keymode.FullHiragana}, "ka ka"))
}

func TestRunKeypad(t *testing.T) {
	got := convert(t, options{mode: keymode.FullHiragana, keypad: true}, "22*>2\n111<\n")
	assert.Equal(t, "ぎか\nい\n", got)
}

func TestRunKeypadNumbers(t *testing.T) {
	got := convert(t, options{mode: keymode.HalfNumber, keypad: true}, "123#")
	assert.Equal(t, "123#\n", got)
}

func writeTable(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "old-kana.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "old-kana", "base": "hiragana", "entries": {"wi": "ゐ"}}`), 0600))
	return path
}

func TestRunCustomTable(t *testing.T) {
	dir := t.TempDir()
	flags := tableFlag{romkan.ScriptHiragana: writeTable(t, dir)}

	cfg, err := loadConfig(filepath.Join(dir, "missing.toml"), &config.Config{Tables: flags.overrides()})
	require.NoError(t, err)
	assert.Equal(t, "ゐか\n", convertWith(t, cfg, options{mode: keymode.FullHiragana}, "wika"))
}

func TestLoadConfigRejectsBadTable(t *testing.T) {
	dir := t.TempDir()
	flags := tableFlag{romkan.ScriptHiragana: filepath.Join(dir, "missing.json")}

	_, err := loadConfig(filepath.Join(dir, "missing.toml"), &config.Config{Tables: flags.overrides()})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	table := writeTable(t, dir)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[input]
locale = "en_US.UTF-8"
keyboard_type = "12key"

[tables]
half_katakana = "`+table+`"
`), 0600))

	flags := tableFlag{romkan.ScriptHiragana: table}
	cfg, err := loadConfig(path, &config.Config{
		Input:  config.InputConfig{Locale: "ja_JP.UTF-8"},
		Tables: flags.overrides(),
	})
	require.NoError(t, err)

	assert.Equal(t, "ja_JP.UTF-8", cfg.Input.Locale)
	assert.Equal(t, "12key", cfg.Input.KeyboardType)
	assert.Equal(t, table, cfg.Tables.Hiragana)
	assert.Equal(t, table, cfg.Tables.HalfKatakana)
	assert.Empty(t, cfg.Tables.FullKatakana)
}

func TestLoadConfigWithoutFlags(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), &config.Config{})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Input.KeyboardType, cfg.Input.KeyboardType)
}

func TestTableFlag(t *testing.T) {
	f := tableFlag{}
	require.NoError(t, f.Set("hiragana=a.json"))
	require.NoError(t, f.Set("half-katakana=b.json"))
	assert.Equal(t, "half-katakana=b.json,hiragana=a.json", f.String())

	assert.Error(t, f.Set("hiragana"))
	assert.Error(t, f.Set("greek=a.json"))
	assert.Error(t, f.Set("half-alphabet=a.json"))
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, keymode.KeySpace, keyFor(' ', false))
	assert.Equal(t, keymode.KeyCode('2'), keyFor('2', false))
	assert.Equal(t, keymode.Key2, keyFor('2', true))
	assert.Equal(t, keymode.KeyReverse, keyFor('<', true))
	assert.Equal(t, keymode.KeyCode('a'), keyFor('a', true))
}

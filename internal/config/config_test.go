package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanaime/internal/keymode"
	"kanaime/internal/logging"
)

// clearEnv blanks the variables ApplyEnvOverrides reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"KANAIME_LOCALE", "KANAIME_KEYBOARD_TYPE", "KANAIME_HARDWARE_KEYBOARD",
		"KANAIME_AUTO_CAPS", "KANAIME_HIRAGANA_TABLE", "KANAIME_FULL_KATAKANA_TABLE",
		"KANAIME_HALF_KATAKANA_TABLE", "KANAIME_LOG_LEVEL", "KANAIME_LOG_FORMAT",
		"KANAIME_LOG_PATH",
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, Version, cfg.Version)
	assert.Equal(t, "qwerty", cfg.Input.KeyboardType)
	assert.True(t, cfg.Input.AutoCaps)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestConfigPath(t *testing.T) {
	t.Setenv("KANAIME_CONFIG_DIR", "/etc/kanaime-test")
	assert.Equal(t, "/etc/kanaime-test", KanaimeDir())
	assert.Equal(t, filepath.Join("/etc/kanaime-test", "config.toml"), ConfigPath())
}

func TestLoadNonexistent(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Input, cfg.Input)
}

func TestLoadFormats(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"config.toml", `
version = 1

[input]
locale = "ja_JP.UTF-8"
keyboard_type = "12key"
hardware_keyboard = true

[logging]
level = "debug"
`},
		{"config.json", `{"version": 1, "input": {"locale": "ja_JP.UTF-8", "keyboard_type": "12key", "hardware_keyboard": true}, "logging": {"level": "debug"}}`},
		{"config.yaml", `
version: 1
input:
  locale: ja_JP.UTF-8
  keyboard_type: 12key
  hardware_keyboard: true
logging:
  level: debug
`},
		{"config", `
[input]
locale = "ja_JP.UTF-8"
keyboard_type = "12key"
hardware_keyboard = true

[logging]
level = "debug"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, dir, tt.name, tt.content))
			require.NoError(t, err)
			assert.Equal(t, "ja_JP.UTF-8", cfg.Input.Locale)
			assert.Equal(t, "12key", cfg.Input.KeyboardType)
			assert.True(t, cfg.Input.HardwareKeyboard)
			// unset keys keep their defaults
			assert.True(t, cfg.Input.AutoCaps)
			assert.Equal(t, "debug", cfg.Logging.Level)
			assert.Equal(t, "text", cfg.Logging.Format)
		})
	}
}

func TestLoadRejectsUnknownTOMLKeys(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "config.toml", "[input]\nkeybaord_type = \"12key\"\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input.keybaord_type")
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("KANAIME_LOCALE", "en_US.UTF-8")
	t.Setenv("KANAIME_KEYBOARD_TYPE", "12key")
	t.Setenv("KANAIME_AUTO_CAPS", "false")
	t.Setenv("KANAIME_HARDWARE_KEYBOARD", "not-a-bool")
	t.Setenv("KANAIME_LOG_LEVEL", "warn")

	cfg := LoadFromEnv()
	assert.Equal(t, "en_US.UTF-8", cfg.Input.Locale)
	assert.Equal(t, "12key", cfg.Input.KeyboardType)
	assert.False(t, cfg.Input.AutoCaps)
	assert.False(t, cfg.Input.HardwareKeyboard, "unparsable booleans are ignored")
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"bad version", func(c *Config) { c.Version = 99 }, "version"},
		{"bad keyboard", func(c *Config) { c.Input.KeyboardType = "dvorak" }, "input.keyboard_type"},
		{"missing table", func(c *Config) { c.Tables.Hiragana = "/nonexistent/table.json" }, "tables.hiragana"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"no output", func(c *Config) { c.Logging.Output = "" }, "logging.output"},
		{"file without path", func(c *Config) { c.Logging.FilePath = "" }, "logging.file_path"},
		{"size out of range", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb"},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestValidationWarnings(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Input.Locale = "Japanese"
	cfg.Tables.Hiragana = writeFile(t, dir, "kana.txt", "{}")

	assert.NoError(t, cfg.Validate(), "warnings do not fail validation")

	all := Check(cfg)
	assert.False(t, all.HasErrors())
	require.Len(t, all.Warnings(), 2)
	assert.Equal(t, "input.locale", all.Warnings()[0].Field)
	assert.Equal(t, "tables.hiragana", all.Warnings()[1].Field)
}

func TestValidLocale(t *testing.T) {
	for _, l := range []string{"C", "POSIX", "ja", "ja_JP", "ja_JP.UTF-8", "en_US.utf8", "sr_RS@latin", "ja-JP"} {
		assert.True(t, validLocale(l), l)
	}
	for _, l := range []string{"Japanese", "j", "JA_JP", "1a"} {
		assert.False(t, validLocale(l), l)
	}
}

func TestMachineOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input.Locale = "ja_JP.UTF-8"
	cfg.Input.KeyboardType = "12key"
	cfg.Input.EnglishPredict = true

	opts, err := cfg.MachineOptions()
	require.NoError(t, err)
	assert.Equal(t, "ja_JP.UTF-8", opts.Locale)
	assert.Equal(t, keymode.TwelveKey, opts.KeyboardType)
	assert.True(t, opts.AutoCaps)
	assert.True(t, opts.EnglishPredict)

	cfg.Input.KeyboardType = "dvorak"
	_, err = cfg.MachineOptions()
	assert.Error(t, err)
}

func TestMachineOptionsSystemLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_CTYPE", "ja_JP.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")

	opts, err := DefaultConfig().MachineOptions()
	require.NoError(t, err)
	assert.Equal(t, "ja_JP.UTF-8", opts.Locale)
}

func TestSystemLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_CTYPE", "")
	t.Setenv("LANG", "")
	assert.Equal(t, "C", SystemLocale())

	t.Setenv("LANG", "de_DE.UTF-8")
	assert.Equal(t, "de_DE.UTF-8", SystemLocale())

	t.Setenv("LC_ALL", "ja_JP.UTF-8")
	assert.Equal(t, "ja_JP.UTF-8", SystemLocale())
}

func TestLoggerConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"
	cfg.Logging.Output = "stderr"
	cfg.Logging.MaxSizeMB = 5

	lc, err := cfg.LoggerConfig()
	require.NoError(t, err)
	assert.Equal(t, logging.LevelDebug, lc.Level)
	assert.Equal(t, logging.FormatJSON, lc.Format)
	assert.Equal(t, "stderr", lc.Output)
	assert.Equal(t, int64(5), lc.MaxSize)
}

func TestTablesLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hiragana.json", `{"name": "old-kana", "base": "hiragana", "entries": {"wi": "ゐ"}}`)

	tables, err := TablesConfig{Hiragana: path}.Load()
	require.NoError(t, err)
	assert.Equal(t, "old-kana", tables.Hiragana.Name())
	v, ok := tables.Hiragana.Lookup("wi")
	require.True(t, ok)
	assert.Equal(t, "ゐ", v)
	require.NotNil(t, tables.FullKatakana, "scripts without a file keep the built-in table")

	_, err = TablesConfig{HalfKatakana: writeFile(t, dir, "bad.json", `{"name": 1}`)}.Load()
	assert.Error(t, err)

	_, err = TablesConfig{FullKatakana: filepath.Join(dir, "missing.json")}.Load()
	assert.Error(t, err)
}

func TestTablesPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	paths := TablesConfig{Hiragana: "~/kana.json", HalfKatakana: "/abs/half.json"}.Paths()
	assert.Equal(t, []string{filepath.Join(home, "kana.json"), "/abs/half.json"}, paths)
}

func TestSaveAndReload(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Input.Locale = "ja_JP.UTF-8"
	cfg.Input.KeyboardType = "12key"
	cfg.Logging.Output = "stderr"

	for _, name := range []string{"config.toml", "config.json", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, "sub", name)
			require.NoError(t, SaveConfig(cfg, path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg.Input, loaded.Input)
			assert.Equal(t, cfg.Logging, loaded.Logging)
		})
	}
}

func TestLoadOrCreate(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, created, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, Version, cfg.Version)

	_, created, err = LoadOrCreate(path)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestMerge(t *testing.T) {
	dst := DefaultConfig()
	src := &Config{
		Input:   InputConfig{Locale: "ja_JP.UTF-8", HardwareKeyboard: true},
		Tables:  TablesConfig{Hiragana: "/tables/kana.json"},
		Logging: LoggingConfig{Level: "debug"},
	}

	merged := Merge(dst, src)
	assert.Equal(t, "ja_JP.UTF-8", merged.Input.Locale)
	assert.Equal(t, "qwerty", merged.Input.KeyboardType)
	assert.True(t, merged.Input.HardwareKeyboard)
	assert.True(t, merged.Input.AutoCaps)
	assert.Equal(t, "/tables/kana.json", merged.Tables.Hiragana)
	assert.Equal(t, "debug", merged.Logging.Level)
	assert.Equal(t, "text", merged.Logging.Format)

	assert.Empty(t, dst.Input.Locale, "merge leaves dst untouched")
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KANAIME_CONFIG_DIR", dir)
	t.Chdir(t.TempDir())

	assert.Empty(t, FindConfigFile())

	path := writeFile(t, dir, "config.yaml", "version: 1\n")
	assert.Equal(t, path, FindConfigFile())
}

func TestLoaderWatchReloadsOnTableChange(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	tablePath := writeFile(t, dir, "kana.json", `{"name": "v1", "entries": {"q": "く"}}`)
	configPath := writeFile(t, dir, "config.toml", `
[tables]
hiragana = "`+tablePath+`"
watch = true

[logging]
output = "stderr"
`)

	loader := NewLoader(configPath)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, tablePath, cfg.Tables.Hiragana)

	changed := make(chan *Config, 4)
	loader.OnChange(func(c *Config) { changed <- c })
	require.NoError(t, loader.Watch())
	defer loader.Close()

	require.NoError(t, os.WriteFile(tablePath, []byte(`{"name": "v2", "entries": {"q": "く"}}`), 0600))

	select {
	case c := <-changed:
		tables, err := c.Tables.Load()
		require.NoError(t, err)
		assert.Equal(t, "v2", tables.Hiragana.Name())
	case err := <-loader.Errors():
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after table change")
	}
}

func TestLoaderIgnoresUnrelatedFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.toml", "version = 1\n")

	loader := NewLoader(configPath)
	_, err := loader.Load()
	require.NoError(t, err)

	assert.True(t, loader.isWatchedFile(configPath))
	assert.False(t, loader.isWatchedFile(filepath.Join(dir, "notes.txt")))
}

// Package config handles configuration loading, validation, and management for kanaime.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"kanaime/internal/keymode"
	"kanaime/internal/logging"
	"kanaime/internal/romkan"
)

// Version is the current configuration schema version.
const Version = 1

// Config holds the complete input method configuration.
type Config struct {
	// Version is the configuration schema version.
	Version int `toml:"version" json:"version" yaml:"version"`

	// Input configures the key mode state machine.
	Input InputConfig `toml:"input" json:"input" yaml:"input"`

	// Tables names custom romaji tables.
	Tables TablesConfig `toml:"tables" json:"tables" yaml:"tables"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`

	// mu protects concurrent access to the config.
	mu sync.RWMutex `toml:"-" json:"-" yaml:"-"`
}

// InputConfig holds keyboard and key mode settings.
type InputConfig struct {
	// Locale decides the default key mode, e.g. "ja_JP.UTF-8".
	// Empty uses the locale of the environment.
	Locale string `toml:"locale" json:"locale" yaml:"locale"`

	// KeyboardType is "qwerty" or "12key".
	KeyboardType string `toml:"keyboard_type" json:"keyboard_type" yaml:"keyboard_type"`

	// HardwareKeyboard is true when typing on a physical keyboard.
	HardwareKeyboard bool `toml:"hardware_keyboard" json:"hardware_keyboard" yaml:"hardware_keyboard"`

	// AutoCaps capitalizes the first letter of a sentence in half-width
	// alphabet.
	AutoCaps bool `toml:"auto_caps" json:"auto_caps" yaml:"auto_caps"`

	// EnglishPredict keeps word prediction on in half-width alphabet.
	EnglishPredict bool `toml:"english_predict" json:"english_predict" yaml:"english_predict"`
}

// TablesConfig holds paths of custom romaji table files. Empty paths use
// the built-in tables.
type TablesConfig struct {
	Hiragana     string `toml:"hiragana" json:"hiragana" yaml:"hiragana"`
	FullKatakana string `toml:"full_katakana" json:"full_katakana" yaml:"full_katakana"`
	HalfKatakana string `toml:"half_katakana" json:"half_katakana" yaml:"half_katakana"`

	// Watch reloads the tables when a table file changes.
	Watch bool `toml:"watch" json:"watch" yaml:"watch"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is the log format: "text" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`

	// Output is the log output: "stdout", "stderr", "file" or "both".
	Output string `toml:"output" json:"output" yaml:"output"`

	// FilePath is the path to the log file (when Output is "file").
	FilePath string `toml:"file_path" json:"file_path" yaml:"file_path"`

	// MaxSizeMB is the maximum log file size before rotation.
	MaxSizeMB int `toml:"max_size_mb" json:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups is the number of old log files to keep.
	MaxBackups int `toml:"max_backups" json:"max_backups" yaml:"max_backups"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: Version,
		Input: InputConfig{
			KeyboardType: keymode.Qwerty.String(),
			AutoCaps:     true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     "file",
			FilePath:   logging.DefaultLogPath(),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(KanaimeDir(), "config.toml")
}

// KanaimeDir returns the configuration directory.
// KANAIME_CONFIG_DIR overrides the platform default.
func KanaimeDir() string {
	if envDir := os.Getenv("KANAIME_CONFIG_DIR"); envDir != "" {
		return envDir
	}
	return PlatformConfigDir()
}

// Load reads configuration from the specified path.
// If the file doesn't exist, returns default configuration.
// Supports TOML, JSON, and YAML formats based on file extension.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg, err := loadConfigFromFile(path)
	if err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	cfg.ApplyEnvOverrides()

	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	return ValidateConfig(c)
}

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables are prefixed with KANAIME_ and use underscores.
func (c *Config) ApplyEnvOverrides() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Input overrides
	if v := os.Getenv("KANAIME_LOCALE"); v != "" {
		c.Input.Locale = v
	}
	if v := os.Getenv("KANAIME_KEYBOARD_TYPE"); v != "" {
		c.Input.KeyboardType = v
	}
	if v, ok := envBool("KANAIME_HARDWARE_KEYBOARD"); ok {
		c.Input.HardwareKeyboard = v
	}
	if v, ok := envBool("KANAIME_AUTO_CAPS"); ok {
		c.Input.AutoCaps = v
	}

	// Table overrides
	if v := os.Getenv("KANAIME_HIRAGANA_TABLE"); v != "" {
		c.Tables.Hiragana = v
	}
	if v := os.Getenv("KANAIME_FULL_KATAKANA_TABLE"); v != "" {
		c.Tables.FullKatakana = v
	}
	if v := os.Getenv("KANAIME_HALF_KATAKANA_TABLE"); v != "" {
		c.Tables.HalfKatakana = v
	}

	// Logging overrides
	if v := os.Getenv("KANAIME_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("KANAIME_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("KANAIME_LOG_PATH"); v != "" {
		c.Logging.FilePath = v
	}
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &Config{
		Version: c.Version,
		Input:   c.Input,
		Tables:  c.Tables,
		Logging: c.Logging,
	}
}

// MachineOptions returns the key mode machine settings. An empty locale
// is taken from the environment.
func (c *Config) MachineOptions() (keymode.Options, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	kb, err := keymode.ParseKeyboardType(c.Input.KeyboardType)
	if err != nil {
		return keymode.Options{}, err
	}
	locale := c.Input.Locale
	if locale == "" {
		locale = SystemLocale()
	}
	return keymode.Options{
		Locale:           locale,
		HardwareKeyboard: c.Input.HardwareKeyboard,
		KeyboardType:     kb,
		AutoCaps:         c.Input.AutoCaps,
		EnglishPredict:   c.Input.EnglishPredict,
	}, nil
}

// LoggerConfig converts the logging section for logging.New.
func (c *Config) LoggerConfig() (*logging.Config, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	level, err := logging.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(c.Logging.Format)
	if err != nil {
		return nil, err
	}
	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Format = format
	cfg.Output = c.Logging.Output
	if c.Logging.FilePath != "" {
		cfg.FilePath = expandPath(c.Logging.FilePath)
	}
	if c.Logging.MaxSizeMB > 0 {
		cfg.MaxSize = int64(c.Logging.MaxSizeMB)
	}
	cfg.MaxBackups = c.Logging.MaxBackups
	return cfg, nil
}

// Paths returns the configured table files.
func (t TablesConfig) Paths() []string {
	var paths []string
	for _, p := range []string{t.Hiragana, t.FullKatakana, t.HalfKatakana} {
		if p != "" {
			paths = append(paths, expandPath(p))
		}
	}
	return paths
}

// Load reads the configured table files. Scripts without a file keep the
// built-in table.
func (t TablesConfig) Load() (romkan.Tables, error) {
	tables := romkan.DefaultTables()
	for _, f := range []struct {
		path string
		dst  **romkan.Table
	}{
		{t.Hiragana, &tables.Hiragana},
		{t.FullKatakana, &tables.FullKatakana},
		{t.HalfKatakana, &tables.HalfKatakana},
	} {
		if f.path == "" {
			continue
		}
		table, err := loadTableFile(expandPath(f.path))
		if err != nil {
			return romkan.Tables{}, err
		}
		*f.dst = table
	}
	return tables, nil
}

func loadTableFile(path string) (*romkan.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	table, err := romkan.LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", path, err)
	}
	return table, nil
}

// decodeTOML decodes data into cfg and rejects unknown keys.
func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kanaime/internal/keymode"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	Warning bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e ValidationErrors) Unwrap() error {
	return ErrInvalidConfig
}

// ValidateConfig validates the configuration and returns the fatal
// problems. Warnings are reported by Check.
func ValidateConfig(c *Config) error {
	if errs := Check(c).Errors(); len(errs) > 0 {
		return errs
	}
	return nil
}

// Check returns every problem found in the configuration, warnings
// included.
func Check(c *Config) ValidationErrors {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var errs ValidationErrors

	// Validate version
	if c.Version < 1 || c.Version > Version {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (current: %d)", c.Version, Version),
		})
	}

	errs = append(errs, validateInput(&c.Input)...)
	errs = append(errs, validateTables(&c.Tables)...)
	errs = append(errs, validateLogging(&c.Logging)...)

	return errs
}

func validateInput(in *InputConfig) ValidationErrors {
	var errs ValidationErrors

	if _, err := keymode.ParseKeyboardType(in.KeyboardType); err != nil {
		errs = append(errs, ValidationError{
			Field:   "input.keyboard_type",
			Message: fmt.Sprintf("invalid keyboard type: %s (valid: qwerty, 12key)", in.KeyboardType),
		})
	}

	// Any locale works; only the Japanese check changes behavior.
	if in.Locale != "" && !validLocale(in.Locale) {
		errs = append(errs, ValidationError{
			Field:   "input.locale",
			Message: fmt.Sprintf("unrecognized locale %q, treated as non-Japanese", in.Locale),
			Warning: true,
		})
	}

	return errs
}

// validLocale accepts "C", "POSIX" and language[_TERRITORY][.codeset][@modifier].
func validLocale(locale string) bool {
	if locale == "C" || locale == "POSIX" {
		return true
	}
	lang := locale
	if i := strings.IndexAny(lang, "_-.@"); i >= 0 {
		lang = lang[:i]
	}
	if len(lang) < 2 || len(lang) > 3 {
		return false
	}
	for _, r := range lang {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func validateTables(t *TablesConfig) ValidationErrors {
	var errs ValidationErrors

	for _, f := range []struct {
		field string
		path  string
	}{
		{"tables.hiragana", t.Hiragana},
		{"tables.full_katakana", t.FullKatakana},
		{"tables.half_katakana", t.HalfKatakana},
	} {
		if f.path == "" {
			continue
		}
		info, err := os.Stat(expandPath(f.path))
		switch {
		case err != nil:
			errs = append(errs, ValidationError{
				Field:   f.field,
				Message: fmt.Sprintf("table file not readable: %v", err),
			})
		case info.IsDir():
			errs = append(errs, ValidationError{
				Field:   f.field,
				Message: "table path is a directory",
			})
		case filepath.Ext(f.path) != ".json":
			errs = append(errs, ValidationError{
				Field:   f.field,
				Message: "table files are JSON, expected a .json extension",
				Warning: true,
			})
		}
	}

	return errs
}

func validateLogging(l *LoggingConfig) ValidationErrors {
	var errs ValidationErrors

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level: %s (valid: debug, info, warn, error)", l.Level),
		})
	}

	switch l.Format {
	case "text", "json":
		// Valid formats
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid log format: %s (valid: text, json)", l.Format),
		})
	}

	switch l.Output {
	case "stdout", "stderr":
	case "file", "both":
		if l.FilePath == "" {
			errs = append(errs, *RequiredFieldError("logging.file_path"))
		}
	case "":
		errs = append(errs, *RequiredFieldError("logging.output"))
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.output",
			Message: fmt.Sprintf("invalid log output: %s (valid: stdout, stderr, file, both)", l.Output),
		})
	}

	if l.MaxSizeMB < 1 || l.MaxSizeMB > 1024 {
		errs = append(errs, *RangeError("logging.max_size_mb", 1, 1024))
	}

	if l.MaxBackups < 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_backups",
			Message: "max backups cannot be negative",
		})
	}

	return errs
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// IsWarning returns true if this is a non-fatal validation issue.
func (e *ValidationError) IsWarning() bool {
	return e.Warning
}

// Warnings returns only warning-level validation errors.
func (e ValidationErrors) Warnings() ValidationErrors {
	var warnings ValidationErrors
	for _, err := range e {
		if err.IsWarning() {
			warnings = append(warnings, err)
		}
	}
	return warnings
}

// Errors returns only error-level validation errors.
func (e ValidationErrors) Errors() ValidationErrors {
	var errs ValidationErrors
	for _, err := range e {
		if !err.IsWarning() {
			errs = append(errs, err)
		}
	}
	return errs
}

// HasErrors returns true if there are any non-warning errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e.Errors()) > 0
}

// RequiredFieldError creates a validation error for a required field.
func RequiredFieldError(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: "required field is missing",
	}
}

// RangeError creates a validation error for an out-of-range value.
func RangeError(field string, min, max interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("value must be between %v and %v", min, max),
	}
}

// ErrInvalidConfig is returned when validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

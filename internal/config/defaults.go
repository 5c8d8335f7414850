package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// PlatformConfigDir returns the platform-specific config directory.
//
// Platform paths:
//   - macOS:   ~/Library/Application Support/kanaime/
//   - Linux:   ~/.config/kanaime/
//   - Windows: %APPDATA%\kanaime\
//
// Falls back to ~/.kanaime if platform detection fails.
func PlatformConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "kanaime")
	case "linux":
		return linuxConfigDir()
	case "windows":
		return windowsConfigDir()
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".kanaime")
	}
}

// PlatformTableDir returns the directory searched for custom table files.
func PlatformTableDir() string {
	return filepath.Join(PlatformConfigDir(), "tables")
}

func linuxConfigDir() string {
	// XDG_CONFIG_HOME or ~/.config
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "kanaime")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "kanaime")
}

func windowsConfigDir() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "kanaime")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "AppData", "Roaming", "kanaime")
}

// SystemLocale returns the locale of the environment following POSIX
// precedence: LC_ALL, then LC_CTYPE, then LANG. The default is "C".
func SystemLocale() string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return "C"
}

// SupportedConfigFormats returns the list of supported config file formats.
func SupportedConfigFormats() []string {
	return []string{
		"toml",
		"json",
		"yaml",
		"yml",
	}
}

// FindConfigFile searches for a config file in standard locations.
// Returns the path to the first found config file, or empty string if none found.
func FindConfigFile() string {
	// Search order:
	// 1. Current directory
	// 2. Config directory
	searchDirs := []string{
		".",
		KanaimeDir(),
	}

	for _, dir := range searchDirs {
		for _, ext := range SupportedConfigFormats() {
			path := filepath.Join(dir, "config."+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

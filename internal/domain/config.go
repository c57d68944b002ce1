package domain

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Config directory and file names.
const (
	AppDirName     = "lasgrid-shim" // Directory name under XDG_CONFIG_HOME
	ConfigFileName = "config.toml"  // Config file name
)

// Config defaults.
const (
	DefaultToolSubpath = "bin"
	DefaultLogLevel    = "info"
)

// Config represents the application configuration.
type Config struct {
	Warnings []string   `toml:"-"`
	Tool     ToolConfig `toml:"tool"`
	Log      LogConfig  `toml:"log"`
}

// ToolConfig holds settings for locating lasgrid from [tool] section.
type ToolConfig struct {
	Dir        string `toml:"dir,omitempty"`        // Overrides the directory derived from the anchor
	Subpath    string `toml:"subpath,omitempty"`    // Binary directory relative to the LAStools root (default: "bin")
	Executable string `toml:"executable,omitempty"` // Executable file name
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	File  string `toml:"file,omitempty"`  // Log file path; empty disables file logging
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// DefaultExecutableName returns the lasgrid file name for the current platform.
func DefaultExecutableName() string {
	if runtime.GOOS == "windows" {
		return "lasgrid.exe"
	}
	return "lasgrid"
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Tool: ToolConfig{
			Subpath:    DefaultToolSubpath,
			Executable: DefaultExecutableName(),
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrConfigInvalid, c.Log.Level)
	}
	if filepath.IsAbs(c.Tool.Subpath) {
		return fmt.Errorf("%w: tool.subpath must be relative (got %q)", ErrConfigInvalid, c.Tool.Subpath)
	}
	if c.Tool.Executable == "" || filepath.Base(c.Tool.Executable) != c.Tool.Executable {
		return fmt.Errorf("%w: tool.executable must be a file name (got %q)", ErrConfigInvalid, c.Tool.Executable)
	}
	return nil
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

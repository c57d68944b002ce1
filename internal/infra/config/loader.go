// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/lasgrid-shim/internal/domain"
)

// Loader loads configuration from TOML files.
type Loader struct {
	path          string // Explicit config file (--config); empty if not given
	globalConfDir string // Path to global config directory (e.g., ~/.config/lasgrid-shim)
}

// NewLoader creates a new Loader.
func NewLoader(path string) *Loader {
	return &Loader{
		path:          path,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(path, globalConfDir string) *Loader {
	return &Loader{
		path:          path,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (default <- global <- explicit).
// A missing global file is not an error; a missing explicit file is.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global)
		}
	}

	if l.path != "" {
		explicit, err := l.loadFile(l.path)
		if err != nil {
			return nil, err
		}
		base = mergeConfigs(base, explicit)
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// loadFile reads one TOML file. Unknown keys become warnings rather than errors.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(&cfg)

	var strict *toml.StrictMissingError
	switch {
	case err == nil:
	case errors.As(err, &strict):
		cfg = domain.Config{}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrConfigInvalid, path, err)
		}
		for _, e := range strict.Errors {
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("unknown key in %s: %s", path, strings.Join(e.Key(), ".")))
		}
	default:
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrConfigInvalid, path, err)
	}

	return &cfg, nil
}

// mergeConfigs merges override into base. Empty values in override are ignored.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	res := *base
	res.Warnings = append(append([]string(nil), base.Warnings...), override.Warnings...)

	if override.Tool.Dir != "" {
		res.Tool.Dir = override.Tool.Dir
	}
	if override.Tool.Subpath != "" {
		res.Tool.Subpath = override.Tool.Subpath
	}
	if override.Tool.Executable != "" {
		res.Tool.Executable = override.Tool.Executable
	}
	if override.Log.File != "" {
		res.Log.File = override.Log.File
	}
	if override.Log.Level != "" {
		res.Log.Level = override.Log.Level
	}

	return &res
}

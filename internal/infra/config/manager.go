package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/lasgrid-shim/internal/domain"
)

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Manager manages configuration files.
type Manager struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/lasgrid-shim)
}

// NewManager creates a new Manager.
func NewManager() *Manager {
	return &Manager{globalConfDir: defaultGlobalConfigDir()}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(globalConfDir string) *Manager {
	return &Manager{globalConfDir: globalConfDir}
}

// GlobalConfigPath returns the global config file path, or "" if it cannot be determined.
func (m *Manager) GlobalConfigPath() string {
	if m.globalConfDir == "" {
		return ""
	}
	return filepath.Join(m.globalConfDir, domain.ConfigFileName)
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() ConfigInfo {
	path := m.GlobalConfigPath()
	if path == "" {
		return ConfigInfo{}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return ConfigInfo{Path: path}
	}
	return ConfigInfo{Path: path, Content: string(content), Exists: true}
}

// InitGlobalConfig writes the default configuration to the global config file.
func (m *Manager) InitGlobalConfig(force bool) (string, error) {
	path := m.GlobalConfigPath()
	if path == "" {
		return "", fmt.Errorf("%w: cannot determine config directory", domain.ErrConfigInvalid)
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, domain.ErrConfigExists
		}
	}

	data, err := RenderConfig(domain.NewDefaultConfig())
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(m.globalConfDir, 0o750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

// RenderConfig encodes cfg as TOML.
func RenderConfig(cfg *domain.Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

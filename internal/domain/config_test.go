package domain

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultToolSubpath, cfg.Tool.Subpath)
	assert.Equal(t, DefaultExecutableName(), cfg.Tool.Executable)
	assert.Empty(t, cfg.Tool.Dir)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"unknown level", func(c *Config) { c.Log.Level = "trace" }},
		{"absolute subpath", func(c *Config) { c.Tool.Subpath = filepath.Join(string(filepath.Separator), "opt", "bin") }},
		{"empty executable", func(c *Config) { c.Tool.Executable = "" }},
		{"executable with dir", func(c *Config) { c.Tool.Executable = filepath.Join("bin", "lasgrid") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrConfigInvalid), "got %v", err)
		})
	}
}

func TestGlobalConfigDir(t *testing.T) {
	got := GlobalConfigDir(filepath.Join("home", "u", ".config"))
	assert.Equal(t, filepath.Join("home", "u", ".config", "lasgrid-shim"), got)
}

func TestToolErrors(t *testing.T) {
	var notFound error = &ToolNotFoundError{What: "executable", Path: "/x/lasgrid"}
	assert.ErrorIs(t, notFound, ErrToolNotFound)
	assert.Contains(t, notFound.Error(), "/x/lasgrid")

	var failed error = &ToolFailedError{ExitCode: 3}
	assert.ErrorIs(t, failed, ErrToolFailed)
	assert.Contains(t, failed.Error(), "3")
}

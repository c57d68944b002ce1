package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/lasgrid-shim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoader_Load_NoFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir("", t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_GlobalConfigOnly(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[tool]
subpath = "bin64"

[log]
level = "debug"
`)

	cfg, err := NewLoaderWithGlobalDir("", globalDir).Load()
	require.NoError(t, err)
	assert.Equal(t, "bin64", cfg.Tool.Subpath)
	assert.Equal(t, domain.DefaultExecutableName(), cfg.Tool.Executable)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_Load_ExplicitOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[tool]
subpath = "bin64"
executable = "lasgrid64"

[log]
level = "warn"
`)
	explicit := filepath.Join(t.TempDir(), "shim.toml")
	writeFile(t, explicit, `
[tool]
dir = "/srv/lastools/bin"

[log]
file = "/var/log/lasgrid-shim.log"
level = "error"
`)

	cfg, err := NewLoaderWithGlobalDir(explicit, globalDir).Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/lastools/bin", cfg.Tool.Dir)
	assert.Equal(t, "bin64", cfg.Tool.Subpath)
	assert.Equal(t, "lasgrid64", cfg.Tool.Executable)
	assert.Equal(t, "/var/log/lasgrid-shim.log", cfg.Log.File)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoader_Load_MissingExplicitFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	_, err := NewLoaderWithGlobalDir(missing, t.TempDir()).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[tool\nsubpath = ")

	_, err := NewLoaderWithGlobalDir("", globalDir).Load()
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestLoader_Load_InvalidValue(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[log]
level = "verbose"
`)

	_, err := NewLoaderWithGlobalDir("", globalDir).Load()
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestLoader_Load_UnknownKeysWarn(t *testing.T) {
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[tool]
subpath = "bin"
timeout = 30

[colors]
ramp = "gray"
`)

	cfg, err := NewLoaderWithGlobalDir("", globalDir).Load()
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Warnings)
	all := strings.Join(cfg.Warnings, "\n")
	assert.Contains(t, all, "tool.timeout")
	assert.Contains(t, all, "colors")
	assert.Equal(t, "bin", cfg.Tool.Subpath)
}

func TestMergeConfigs_KeepsBaseForEmptyValues(t *testing.T) {
	base := domain.NewDefaultConfig()
	got := mergeConfigs(base, &domain.Config{Log: domain.LogConfig{File: "x.log"}})

	assert.Equal(t, base.Tool, got.Tool)
	assert.Equal(t, "x.log", got.Log.File)
	assert.Equal(t, domain.DefaultLogLevel, got.Log.Level)
	assert.Empty(t, base.Log.File, "base must not be modified")
}

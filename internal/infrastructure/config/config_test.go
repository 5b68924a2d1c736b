package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Filter.CaseSensitive)
	assert.Equal(t, DefaultPrefetchDepth, cfg.Filter.PrefetchDepth)
	assert.True(t, cfg.Model.Watch)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"
format = "console"

[filter]
case_sensitive = false
prefetch_depth = 4

[model]
watch = false

[window]
scale = 2.0
available_width = 1920.0
available_height = 1080.0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Filter.CaseSensitive)
	assert.Equal(t, 4, cfg.Filter.PrefetchDepth)
	assert.False(t, cfg.Model.Watch)
	assert.Equal(t, float32(2.0), cfg.Window.Scale)
	assert.Equal(t, float32(1920), cfg.Window.AvailableWidth)
	assert.Equal(t, float32(1080), cfg.Window.AvailableHeight)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "info"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Filter.CaseSensitive)
	assert.Equal(t, float32(DefaultWindowScale), cfg.Window.Scale)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"構文エラー", "[log\nlevel="},
		{"不正なフォーマット", "[log]\nformat = \"xml\""},
		{"負の先読み", "[filter]\nprefetch_depth = -1"},
		{"ゼロの倍率", "[window]\nscale = 0.0"},
		{"負の画面サイズ", "[window]\navailable_width = -5.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDefaultPath_Env(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/dirview.toml")
	assert.Equal(t, "/etc/dirview.toml", DefaultPath())
}

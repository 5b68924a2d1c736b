// Package config はアプリケーション設定の読み込みを提供します
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// EnvConfigPath は設定ファイルのパスを上書きする環境変数です
	EnvConfigPath = "DIRVIEW_CONFIG"
	// AppDirName は設定ディレクトリ配下のアプリケーション用ディレクトリ名です
	AppDirName = "dirview"
	// FileName は設定ファイル名です
	FileName = "config.toml"

	DefaultPrefetchDepth = 2
	DefaultWindowScale   = 1.5
)

// Config はアプリケーション設定です
type Config struct {
	Log    LogConfig    `toml:"log"`
	Filter FilterConfig `toml:"filter"`
	Model  ModelConfig  `toml:"model"`
	Window WindowConfig `toml:"window"`
}

// LogConfig はログ出力の設定です
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" または "console"
}

// FilterConfig は名前フィルターの設定です
type FilterConfig struct {
	CaseSensitive bool `toml:"case_sensitive"`
	// PrefetchDepth はフィルター適用時に先読みする表示ルート配下の階層数です
	PrefetchDepth int `toml:"prefetch_depth"`
}

// ModelConfig はファイルシステムモデルの設定です
type ModelConfig struct {
	Watch bool `toml:"watch"`
}

// WindowConfig はウィンドウの設定です
type WindowConfig struct {
	// Scale は利用可能な画面サイズを割る値です
	Scale float32 `toml:"scale"`
	// AvailableWidth と AvailableHeight はプラットフォームが画面サイズを
	// 報告できない場合に使う値です。0 は未指定です
	AvailableWidth  float32 `toml:"available_width"`
	AvailableHeight float32 `toml:"available_height"`
}

// Default はデフォルト設定を返します
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "json",
		},
		Filter: FilterConfig{
			CaseSensitive: true,
			PrefetchDepth: DefaultPrefetchDepth,
		},
		Model: ModelConfig{
			Watch: true,
		},
		Window: WindowConfig{
			Scale: DefaultWindowScale,
		},
	}
}

// DefaultPath は設定ファイルの既定パスを返します
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppDirName, FileName)
}

// Load は設定ファイルを読み込みます。path が空の場合は既定パスを使います。
// ファイルが存在しない場合はデフォルト設定を返します
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("設定ファイル '%s' の読み込みに失敗しました: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定ファイル '%s' が不正です: %w", path, err)
	}
	return cfg, nil
}

// Validate は設定値を検証します
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format は json または console で指定してください: %q", c.Log.Format)
	}
	if c.Filter.PrefetchDepth < 0 {
		return fmt.Errorf("filter.prefetch_depth は0以上で指定してください: %d", c.Filter.PrefetchDepth)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale は正の値で指定してください: %v", c.Window.Scale)
	}
	if c.Window.AvailableWidth < 0 || c.Window.AvailableHeight < 0 {
		return fmt.Errorf("window.available_width と window.available_height は0以上で指定してください")
	}
	return nil
}

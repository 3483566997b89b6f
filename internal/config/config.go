package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "ripple"

type Config struct {
	AccentFrom   string `koanf:"accent_from"`   // gradient start, hex color
	AccentTo     string `koanf:"accent_to"`     // gradient end, hex color
	HistoryLimit int    `koanf:"history_limit"` // dispatch journal size (1-1000)
	InitialCount int    `koanf:"initial_count"` // counter start value
	DebugLog     string `koanf:"debug_log"`     // path for the debug log; empty disables it
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		AccentFrom: "#5f87ff",
		AccentTo:   "#af5fff",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in debug_log
	if cfg.DebugLog != "" {
		cfg.DebugLog = expandPath(cfg.DebugLog)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. XDG config dir (~/.config/ripple/config.toml)
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetHistoryLimit returns the journal size with defaults and bounds applied.
func (c *Config) GetHistoryLimit() int {
	if c.HistoryLimit <= 0 {
		return 100
	}
	if c.HistoryLimit > 1000 {
		return 1000
	}
	return c.HistoryLimit
}

// HasDebugLog returns true if a debug log path is configured.
func (c *Config) HasDebugLog() bool {
	return c.DebugLog != ""
}

// Package config handles global magpie configuration.
//
// The global config.toml holds file locations and executable paths; the
// optional rules.yaml holds the data-ish per-user tables (host
// translations, link suffixes). Alfred workflows override file
// locations through the journal and notebook environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the global magpie configuration.
type Config struct {
	// Journal is the path of the append-only journal file.
	Journal string `toml:"journal"`

	// Notebook is the path of the current weekly note.
	Notebook string `toml:"notebook"`

	// History is the file weekly notes roll over into.
	History string `toml:"history"`

	// Store is the path of the quick-navigation database.
	Store string `toml:"store"`

	// LLMPath is the llm executable (aliases are invisible to exec).
	LLMPath string `toml:"llm_path"`

	// ExiftoolPath overrides the exiftool lookup on PATH.
	ExiftoolPath string `toml:"exiftool_path"`

	// PhonePrefix is prepended to phone numbers without a country code.
	PhonePrefix string `toml:"phone_prefix"`

	// DalleDir is the folder scanned for DALL·E downloads.
	DalleDir string `toml:"dalle_dir"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an ANSI color code ("0" to "255") or hex color.
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme for rendered markdown.
	CodeTheme string `toml:"code_theme"`
}

// Load reads the configuration from the default location, then applies
// environment overrides. A missing file yields a default config.
func Load() (*Config, error) {
	cfg := &Config{}

	path := DefaultPath()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

// LoadFrom reads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.PhonePrefix == "" {
		c.PhonePrefix = "+6"
	}
	if c.Store == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			c.Store = filepath.Join(dir, "magpie", "paths.db")
		}
	}
}

// applyEnv applies the Alfred-compatible environment overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv("journal"); v != "" {
		c.Journal = v
	}
	if v := os.Getenv("notebook"); v != "" {
		c.Notebook = v
	}
	c.Journal = expandHome(c.Journal)
	c.Notebook = expandHome(c.Notebook)
	c.History = expandHome(c.History)
	c.Store = expandHome(c.Store)
	c.DalleDir = expandHome(c.DalleDir)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// DefaultPath returns the config file path, preferring the XDG-style
// ~/.config/magpie/config.toml.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "magpie", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "magpie", "config.toml")
	}
	return filepath.Join(".", "config.toml")
}

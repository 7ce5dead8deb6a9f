package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Rules are the per-user rewrite tables loaded from rules.yaml next to
// the global config.
type Rules struct {
	// Translate maps hosts to their replacements in the droplr command.
	Translate map[string]string `yaml:"translate"`

	// IgnoreSuffix on an entry drops the clipboard link.
	IgnoreSuffix string `yaml:"ignore_suffix"`

	// ClipboardSuffix on an entry swaps the link for the clipboard.
	ClipboardSuffix string `yaml:"clipboard_suffix"`
}

// DefaultRules are used when no rules.yaml exists.
func DefaultRules() Rules {
	return Rules{
		Translate:       map[string]string{"cld.wthms.co": "d.pr/i"},
		IgnoreSuffix:    "xxx",
		ClipboardSuffix: "ccc",
	}
}

// RulesPath returns the rules.yaml path next to the global config.
func RulesPath() string {
	return filepath.Join(filepath.Dir(DefaultPath()), "rules.yaml")
}

// LoadRules reads rules.yaml, falling back to defaults when absent.
// Present-but-empty fields keep their defaults.
func LoadRules() (Rules, error) {
	return LoadRulesFrom(RulesPath())
}

// LoadRulesFrom reads rules from a specific path.
func LoadRulesFrom(path string) (Rules, error) {
	rules := DefaultRules()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return rules, nil
	}
	if err != nil {
		return rules, fmt.Errorf("read rules %s: %w", path, err)
	}

	var loaded Rules
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return rules, fmt.Errorf("parse rules %s: %w", path, err)
	}
	if len(loaded.Translate) > 0 {
		rules.Translate = loaded.Translate
	}
	if loaded.IgnoreSuffix != "" {
		rules.IgnoreSuffix = loaded.IgnoreSuffix
	}
	if loaded.ClipboardSuffix != "" {
		rules.ClipboardSuffix = loaded.ClipboardSuffix
	}
	return rules, nil
}

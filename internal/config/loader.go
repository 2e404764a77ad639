package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDuel loads the duel configuration.
// Search order: customPath -> ~/.lightcycle/configs/duel.yaml ->
// ./configs/duel.yaml -> embedded default.
// A custom path that fails to read or parse is an error; the fallback paths
// are tried silently.
func LoadDuel(customPath string) (DuelConfig, error) {
	var cfg DuelConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("duel.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	if data, err := os.ReadFile("configs/duel.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
	}

	if err := yaml.Unmarshal(defaultDuelYAML, &cfg); err != nil {
		return DefaultDuelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lightcycle", "configs", filename)
}

// ApplyDifficultyPreset overrides the AI tier from a CLI preset.
// An empty preset leaves the config untouched.
func ApplyDifficultyPreset(cfg *DuelConfig, preset string) error {
	if preset == "" {
		return nil
	}
	d := Difficulty(preset)
	if !d.Valid() {
		return fmt.Errorf("unknown difficulty %q (want easy, medium, or hard)", preset)
	}
	cfg.AI.Difficulty = d
	return nil
}

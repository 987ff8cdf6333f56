package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadContra loads the stage configuration.
// Search order: customPath -> ~/.contra/configs/contra.yaml -> ./configs/contra.yaml -> embedded default
//
// Files are decoded on top of the hardcoded defaults, so a partial file
// only overrides the keys it sets.
func LoadContra(customPath string) (ContraConfig, error) {
	cfg := DefaultContraConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("contra.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if c, ok := decodeOver(data); ok {
				return c, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "contra.yaml")); err == nil {
		if c, ok := decodeOver(data); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	if c, ok := decodeOver(defaultContraYAML); ok {
		return c, nil
	}
	return DefaultContraConfig(), nil // Fallback to hardcoded if embed fails
}

func decodeOver(data []byte) (ContraConfig, bool) {
	cfg := DefaultContraConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".contra", "configs", filename)
}

// ApplyContraPreset modifies the config based on a difficulty preset.
func ApplyContraPreset(cfg *ContraConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.FireInterval = 0.15
	case DifficultyHard:
		cfg.Player.FireInterval = 0.35
		cfg.Bullets.Speed = 0.08
		cfg.Difficulty.Scaling.FireSlowdown = 0.6
	}
}

// Marshal renders a config as YAML, used by `contra config`.
func Marshal(cfg ContraConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

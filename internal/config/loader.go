package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in each search location.
const FileName = "match3.yaml"

// LoadMatch3 loads the variant configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml -> ./configs/match3.yaml -> embedded default
// Files found along the way that fail to parse or validate are skipped;
// only an explicit customPath reports errors.
func LoadMatch3(customPath string) (Match3Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Match3Config{}, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, err := readFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultMatch3YAML)
	if err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readFile(path string) (Match3Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Match3Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Match3Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (Match3Config, error) {
	var cfg Match3Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}

// ApplyMatch3Preset modifies a variant based on a difficulty preset.
// An empty preset leaves the variant as configured.
func ApplyMatch3Preset(cfg *VariantConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the move budget; unlimited stays unlimited
	if cfg.Rules.Moves > 0 {
		switch preset {
		case DifficultyEasy:
			cfg.Rules.Moves += 5
		case DifficultyHard:
			cfg.Rules.Moves -= 5
			if cfg.Rules.Moves < 1 {
				cfg.Rules.Moves = 1
			}
		}
	}

	if preset == DifficultyHard && cfg.Board.Kinds < maxKinds() {
		cfg.Board.Kinds++
	}
}

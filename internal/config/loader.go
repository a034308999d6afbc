package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-chroma/internal/games/chroma"
)

// LoadChroma loads the game configuration.
// Search order: customPath -> ~/.chroma/configs/chroma.yaml -> ./configs/chroma.yaml -> embedded default
// Files only need to set the keys they change; everything else keeps its default.
func LoadChroma(customPath string) (ChromaConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultChromaConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseChroma(data)
		if err != nil {
			return DefaultChromaConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("chroma.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseChroma(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "chroma.yaml")); err == nil {
		if cfg, err := parseChroma(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseChroma(defaultChromaYAML)
	if err != nil {
		return DefaultChromaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseChroma decodes YAML over the hardcoded defaults and validates the result.
func parseChroma(data []byte) (ChromaConfig, error) {
	cfg := DefaultChromaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
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
	return filepath.Join(home, ".chroma", "configs", filename)
}

// Rules converts the timer section into engine rules.
func (c ChromaConfig) Rules() chroma.Rules {
	return chroma.Rules{
		InitialTime: c.Timer.Initial,
		HitBonus:    c.Timer.HitBonus,
		MissPenalty: c.Timer.MissPenalty,
		MaxTime:     c.Timer.Max,
	}
}

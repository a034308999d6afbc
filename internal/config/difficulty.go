package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyChromaPreset modifies the timer rules for a difficulty preset.
// Normal leaves the loaded config untouched.
func ApplyChromaPreset(cfg *ChromaConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timer.Initial = 20.0
		cfg.Timer.HitBonus = 3.0
	case DifficultyHard:
		cfg.Timer.Initial = 10.0
		cfg.Timer.MissPenalty = 4.0
	}
	if cfg.Timer.Max < cfg.Timer.Initial {
		cfg.Timer.Max = cfg.Timer.Initial
	}
}

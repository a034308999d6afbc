package config

import (
	_ "embed"
)

//go:embed defaults/chroma.yaml
var defaultChromaYAML []byte

// DefaultChromaConfig returns the default configuration.
func DefaultChromaConfig() ChromaConfig {
	return ChromaConfig{
		Timer: TimerConfig{
			Initial:     15.0,
			HitBonus:    2.0,
			MissPenalty: 3.0,
			Max:         30.0,
		},
		Display: DisplayConfig{
			TickRate:   10, // 100ms per tick
			CellWidth:  8,
			CellHeight: 3,
			Gap:        1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultChromaYAML
}

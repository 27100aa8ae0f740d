package config

import (
	_ "embed"
)

//go:embed defaults/carrot.yaml
var defaultCarrotYAML []byte

// DefaultCarrotConfig returns the default configuration.
func DefaultCarrotConfig() CarrotConfig {
	return CarrotConfig{
		Round: RoundConfig{
			Carrots:     15,
			Bugs:        10,
			DurationSec: 15,
		},
		Items: ItemConfig{
			Width:  3,
			Height: 3,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCarrotYAML
}

// Package config provides YAML-based configuration loading for the
// carrot field game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/carrot-field/internal/game"
)

// ErrInvalidConfig is returned when a loaded configuration cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MinSampleRate is the lowest audio sample rate accepted, in Hz.
const MinSampleRate = 8000

// CarrotConfig contains all configuration for the game.
type CarrotConfig struct {
	Round RoundConfig `yaml:"round"`
	Items ItemConfig  `yaml:"items"`
	Audio AudioConfig `yaml:"audio"`
}

// RoundConfig defines the fixed rules of every round.
type RoundConfig struct {
	Carrots     int `yaml:"carrots"`
	Bugs        int `yaml:"bugs"`
	DurationSec int `yaml:"duration_sec"`
}

// ItemConfig defines the size of field items in terminal cells.
type ItemConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AudioConfig defines sound output settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 = silent, 1.0 = full
	SampleRate int     `yaml:"sample_rate"`
}

// Validate checks that every value is usable.
func (c CarrotConfig) Validate() error {
	switch {
	case c.Round.Carrots <= 0:
		return fmt.Errorf("%w: round.carrots must be positive, got %d", ErrInvalidConfig, c.Round.Carrots)
	case c.Round.Bugs < 0:
		return fmt.Errorf("%w: round.bugs must not be negative, got %d", ErrInvalidConfig, c.Round.Bugs)
	case c.Round.DurationSec <= 0:
		return fmt.Errorf("%w: round.duration_sec must be positive, got %d", ErrInvalidConfig, c.Round.DurationSec)
	case c.Items.Width <= 0 || c.Items.Height <= 0:
		return fmt.Errorf("%w: items size must be positive, got %dx%d", ErrInvalidConfig, c.Items.Width, c.Items.Height)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %g", ErrInvalidConfig, c.Audio.Volume)
	case c.Audio.SampleRate < MinSampleRate:
		return fmt.Errorf("%w: audio.sample_rate must be at least %d, got %d", ErrInvalidConfig, MinSampleRate, c.Audio.SampleRate)
	}
	return nil
}

// GameRules converts the round settings into controller rules.
func (c CarrotConfig) GameRules() game.Rules {
	return game.Rules{
		CarrotCount: c.Round.Carrots,
		BugCount:    c.Round.Bugs,
		Duration:    c.Round.DurationSec,
	}
}

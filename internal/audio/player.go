// Package audio plays the game's synthesized sound cues.
//
// Sounds are fire-and-forget: Play never blocks the caller and a failure to
// reach the sound device degrades to silence instead of an error.
package audio

import (
	"github.com/vovakirdan/carrot-field/internal/core"
)

// Player plays and stops sound cues.
type Player interface {
	// Play starts a cue. Playing the looping background while it already
	// runs is a no-op.
	Play(s core.Sound)
	// Stop silences a cue. Only the background loop can be stopped; short
	// cues always run to completion.
	Stop(s core.Sound)
	// Close releases the output device.
	Close()
}

// Silent is a Player that discards every cue.
type Silent struct{}

func (Silent) Play(core.Sound) {}
func (Silent) Stop(core.Sound) {}
func (Silent) Close()          {}

var _ Player = Silent{}

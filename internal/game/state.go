// Package game implements the carrot field state machine.
//
// A Controller owns one GameState and moves it between Idle, Running and
// Ended in response to events (start, stop, tick, hit). Transitions are pure:
// they return the side effects the front end has to carry out (placing items,
// playing sounds, scheduling the next tick) instead of performing them.
package game

import (
	"errors"
	"fmt"
)

// Phase is the coarse state of a round.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome tells how an ended round finished.
// OutcomeNone is used for a round the player stopped.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "stopped"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// State is a snapshot of the controller's game state.
type State struct {
	Phase     Phase
	Outcome   Outcome // Only meaningful when Phase is PhaseEnded
	Score     int     // Carrots pulled this round
	Remaining int     // Seconds left on the countdown
}

// Running reports whether a round is in progress.
func (s State) Running() bool {
	return s.Phase == PhaseRunning
}

// ErrInvalidRules is returned when rules cannot describe a playable round.
var ErrInvalidRules = errors.New("game: invalid rules")

// Rules are the fixed per-process constants of a round.
type Rules struct {
	CarrotCount int // Carrots placed per round; pulling all of them wins
	BugCount    int // Bugs placed per round
	Duration    int // Countdown length in seconds
}

// DefaultRules returns the classic layout: 15 carrots, 10 bugs, 15 seconds.
func DefaultRules() Rules {
	return Rules{
		CarrotCount: 15,
		BugCount:    10,
		Duration:    15,
	}
}

// Validate checks that the rules describe a playable round.
func (r Rules) Validate() error {
	if r.CarrotCount <= 0 {
		return fmt.Errorf("%w: carrot count must be positive, got %d", ErrInvalidRules, r.CarrotCount)
	}
	if r.BugCount < 0 {
		return fmt.Errorf("%w: bug count must not be negative, got %d", ErrInvalidRules, r.BugCount)
	}
	if r.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidRules, r.Duration)
	}
	return nil
}

package game

import (
	"time"

	"github.com/vovakirdan/carrot-field/internal/core"
)

// Event is an input delivered to Controller.Dispatch.
type Event interface {
	isEvent()
}

// StartEvent begins a new round.
type StartEvent struct{}

// StopEvent aborts the running round.
type StopEvent struct{}

// TickEvent is one countdown second. Token is the value carried by the
// ScheduleTick effect that requested it.
type TickEvent struct {
	Token TimerToken
}

// HitEvent reports a click on a field item.
type HitEvent struct {
	Kind core.ItemKind
}

func (StartEvent) isEvent() {}
func (StopEvent) isEvent()  {}
func (TickEvent) isEvent()  {}
func (HitEvent) isEvent()   {}

// Effect is a fire-and-forget side effect requested by a transition.
// Effects are returned in the order they should be applied.
type Effect interface {
	isEffect()
}

// ClearField removes every item from the field.
type ClearField struct{}

// PlaceItems asks the field to place Count items of Kind at random positions.
type PlaceItems struct {
	Kind  core.ItemKind
	Count int
}

// PlaySound starts a sound cue.
type PlaySound struct {
	Sound core.Sound
}

// StopSound stops a (looping) sound cue.
type StopSound struct {
	Sound core.Sound
}

// ScheduleTick asks for a TickEvent carrying Token to be delivered After from now.
type ScheduleTick struct {
	Token TimerToken
	After time.Duration
}

// CancelTimer reports that any pending tick is now stale.
type CancelTimer struct{}

// RoundEnded reports the result of a round that just left PhaseRunning.
type RoundEnded struct {
	Outcome Outcome
	Score   int
	Carrots int
	Elapsed int // Seconds played
}

func (ClearField) isEffect()   {}
func (PlaceItems) isEffect()   {}
func (PlaySound) isEffect()    {}
func (StopSound) isEffect()    {}
func (ScheduleTick) isEffect() {}
func (CancelTimer) isEffect()  {}
func (RoundEnded) isEffect()   {}

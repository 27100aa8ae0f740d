package game

import (
	"github.com/vovakirdan/carrot-field/internal/core"
)

// Controller owns the state of one play field.
//
// It is not safe for concurrent use; the front end delivers every event
// from a single goroutine.
type Controller struct {
	rules Rules
	state State
	timer Timer
}

// NewController creates an idle controller for the given rules.
func NewController(rules Rules) (*Controller, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		rules: rules,
		state: State{Phase: PhaseIdle, Remaining: rules.Duration},
	}, nil
}

// Rules returns the rules this controller was created with.
func (c *Controller) Rules() Rules {
	return c.rules
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state
}

// CarrotsLeft returns how many carrots are still in the field.
func (c *Controller) CarrotsLeft() int {
	return c.rules.CarrotCount - c.state.Score
}

// TimerArmed reports whether a countdown tick is currently expected.
func (c *Controller) TimerArmed() bool {
	return c.timer.Armed()
}

// Dispatch routes an event to the matching transition.
// It reports whether the state changed; invalid transitions are no-ops
// that return false and no effects.
func (c *Controller) Dispatch(ev Event) (bool, []Effect) {
	switch ev := ev.(type) {
	case StartEvent:
		return c.Start()
	case StopEvent:
		return c.Stop()
	case TickEvent:
		return c.Tick(ev.Token)
	case HitEvent:
		return c.RegisterHit(ev.Kind)
	default:
		return false, nil
	}
}

// Start begins a new round from Idle or Ended.
func (c *Controller) Start() (bool, []Effect) {
	if c.state.Phase == PhaseRunning {
		return false, nil
	}

	// Arm replaces the previous token before the reset, so a tick queued
	// by an older round can never reach the new one.
	token := c.timer.Arm()
	c.state = State{
		Phase:     PhaseRunning,
		Outcome:   OutcomeNone,
		Score:     0,
		Remaining: c.rules.Duration,
	}

	return true, []Effect{
		ClearField{},
		PlaceItems{Kind: core.ItemCarrot, Count: c.rules.CarrotCount},
		PlaceItems{Kind: core.ItemBug, Count: c.rules.BugCount},
		PlaySound{Sound: core.SoundBackground},
		ScheduleTick{Token: token, After: TickInterval},
	}
}

// Stop aborts the running round without a win or loss.
func (c *Controller) Stop() (bool, []Effect) {
	if c.state.Phase != PhaseRunning {
		return false, nil
	}
	return true, c.end(OutcomeNone)
}

// Tick advances the countdown by one second.
// Ticks carrying a stale token are ignored.
func (c *Controller) Tick(token TimerToken) (bool, []Effect) {
	if c.state.Phase != PhaseRunning || !c.timer.Accepts(token) {
		return false, nil
	}

	c.state.Remaining--
	if c.state.Remaining > 0 {
		return true, []Effect{ScheduleTick{Token: token, After: TickInterval}}
	}

	c.state.Remaining = 0
	if c.state.Score == c.rules.CarrotCount {
		return true, c.end(OutcomeWin)
	}
	return true, c.end(OutcomeLose)
}

// RegisterHit applies a click on an item of the given kind.
func (c *Controller) RegisterHit(kind core.ItemKind) (bool, []Effect) {
	if c.state.Phase != PhaseRunning {
		return false, nil
	}

	switch kind {
	case core.ItemCarrot:
		c.state.Score++
		effects := []Effect{PlaySound{Sound: core.SoundCarrotPull}}
		if c.state.Score >= c.rules.CarrotCount {
			effects = append(effects, c.end(OutcomeWin)...)
		}
		return true, effects

	case core.ItemBug:
		return true, c.end(OutcomeLose)

	default:
		return false, nil
	}
}

// end leaves PhaseRunning. The timer is cancelled before anything else so
// the transition and the cancellation are indivisible.
func (c *Controller) end(outcome Outcome) []Effect {
	c.timer.Cancel()
	c.state.Phase = PhaseEnded
	c.state.Outcome = outcome

	cue := core.SoundAlert
	switch outcome {
	case OutcomeWin:
		cue = core.SoundWin
	case OutcomeLose:
		cue = core.SoundBugPull
	}

	return []Effect{
		CancelTimer{},
		StopSound{Sound: core.SoundBackground},
		PlaySound{Sound: cue},
		RoundEnded{
			Outcome: outcome,
			Score:   c.state.Score,
			Carrots: c.rules.CarrotCount,
			Elapsed: c.rules.Duration - c.state.Remaining,
		},
	}
}

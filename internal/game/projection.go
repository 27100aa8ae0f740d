package game

import (
	"fmt"

	"github.com/vovakirdan/carrot-field/internal/core"
)

// Prompt messages shown when a round ends.
const (
	PromptReplay = "REPLAY?"
	PromptWin    = "YOU WIN!"
	PromptLose   = "YOU LOSE!"
)

// Control is the icon on the play/stop button.
type Control int

const (
	ControlPlay Control = iota
	ControlStop
)

// Projection is the UI state derived from a GameState.
// The front end renders it; nothing in it is authoritative.
type Projection struct {
	ControlVisible bool
	Control        Control
	HUDVisible     bool   // Timer and score are shown once a round has started
	Seconds        int    // Countdown value for the timer display
	CarrotsLeft    int    // The score display counts down remaining carrots
	Prompt         string // Empty when no prompt is shown
}

// Project derives the UI state for s under rules r.
func Project(s State, r Rules) Projection {
	p := Projection{
		Seconds:     s.Remaining,
		CarrotsLeft: r.CarrotCount - s.Score,
	}

	switch s.Phase {
	case PhaseIdle:
		p.ControlVisible = true
		p.Control = ControlPlay
	case PhaseRunning:
		p.ControlVisible = true
		p.Control = ControlStop
		p.HUDVisible = true
	case PhaseEnded:
		p.HUDVisible = true
		p.Prompt = promptFor(s.Outcome)
	}
	return p
}

// Projection returns the UI state for the controller's current state.
func (c *Controller) Projection() Projection {
	return Project(c.state, c.rules)
}

func promptFor(o Outcome) string {
	switch o {
	case OutcomeWin:
		return PromptWin
	case OutcomeLose:
		return PromptLose
	default:
		return PromptReplay
	}
}

// FormatClock renders seconds as "m : s", the way the timer display shows it.
func FormatClock(seconds int) string {
	seconds = core.Max(seconds, 0)
	return fmt.Sprintf("%d : %d", seconds/60, seconds%60)
}

// Presenter is the display side of the front end.
type Presenter interface {
	PlaceItems(kind core.ItemKind, count int)
	SetScoreDisplay(n int)
	SetTimerDisplay(seconds int)
	ShowReplayPrompt(message string)
	HidePrompt()
	SetControlVisible(visible bool)
	SetControlIcon(c Control)
	SetHUDVisible(visible bool)
}

// Apply pushes the projection onto a Presenter.
// Item placement is driven by PlaceItems effects, not by the projection.
func (p Projection) Apply(dst Presenter) {
	dst.SetControlVisible(p.ControlVisible)
	dst.SetControlIcon(p.Control)
	dst.SetHUDVisible(p.HUDVisible)
	dst.SetTimerDisplay(p.Seconds)
	dst.SetScoreDisplay(p.CarrotsLeft)
	if p.Prompt != "" {
		dst.ShowReplayPrompt(p.Prompt)
	} else {
		dst.HidePrompt()
	}
}

package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/carrot-field/internal/core"
)

func newTestController(t *testing.T, rules Rules) *Controller {
	t.Helper()
	c, err := NewController(rules)
	if err != nil {
		t.Fatalf("NewController() failed: %v", err)
	}
	return c
}

// startRound starts a round and returns the token of the first scheduled tick.
func startRound(t *testing.T, c *Controller) TimerToken {
	t.Helper()
	changed, effects := c.Start()
	if !changed {
		t.Fatalf("Start() should change state from %s", c.State().Phase)
	}
	tick, ok := findEffect[ScheduleTick](effects)
	if !ok {
		t.Fatalf("Start() should schedule a tick, effects = %#v", effects)
	}
	return tick.Token
}

func findEffect[T Effect](effects []Effect) (T, bool) {
	for _, e := range effects {
		if v, ok := e.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func playedSounds(effects []Effect) []core.Sound {
	var sounds []core.Sound
	for _, e := range effects {
		if p, ok := e.(PlaySound); ok {
			sounds = append(sounds, p.Sound)
		}
	}
	return sounds
}

func TestNewControllerValidatesRules(t *testing.T) {
	tests := []struct {
		name  string
		rules Rules
		ok    bool
	}{
		{"defaults", DefaultRules(), true},
		{"no bugs", Rules{CarrotCount: 3, BugCount: 0, Duration: 5}, true},
		{"zero carrots", Rules{CarrotCount: 0, BugCount: 1, Duration: 5}, false},
		{"negative bugs", Rules{CarrotCount: 3, BugCount: -1, Duration: 5}, false},
		{"zero duration", Rules{CarrotCount: 3, BugCount: 1, Duration: 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewController(tc.rules)
			if tc.ok {
				if err != nil {
					t.Fatalf("NewController() unexpected error: %v", err)
				}
				if c.State().Phase != PhaseIdle {
					t.Errorf("new controller should be idle, got %s", c.State().Phase)
				}
				return
			}
			if !errors.Is(err, ErrInvalidRules) {
				t.Errorf("expected ErrInvalidRules, got %v", err)
			}
		})
	}
}

func TestStartFromIdle(t *testing.T) {
	rules := Rules{CarrotCount: 15, BugCount: 10, Duration: 15}
	c := newTestController(t, rules)

	changed, effects := c.Start()
	if !changed {
		t.Fatal("Start() from idle should change state")
	}

	s := c.State()
	if s.Phase != PhaseRunning || s.Score != 0 || s.Remaining != 15 {
		t.Errorf("unexpected state after Start: %+v", s)
	}
	if !c.TimerArmed() {
		t.Error("timer should be armed after Start")
	}

	if _, ok := effects[0].(ClearField); !ok {
		t.Errorf("first effect should clear the field, got %#v", effects[0])
	}

	var carrots, bugs int
	for _, e := range effects {
		if p, ok := e.(PlaceItems); ok {
			switch p.Kind {
			case core.ItemCarrot:
				carrots += p.Count
			case core.ItemBug:
				bugs += p.Count
			}
		}
	}
	if carrots != 15 || bugs != 10 {
		t.Errorf("Start should place 15 carrots and 10 bugs, got %d and %d", carrots, bugs)
	}

	sounds := playedSounds(effects)
	if len(sounds) != 1 || sounds[0] != core.SoundBackground {
		t.Errorf("Start should play only the background loop, got %v", sounds)
	}

	tick, ok := findEffect[ScheduleTick](effects)
	if !ok || tick.After != TickInterval {
		t.Errorf("Start should schedule a tick one second out, got %#v", tick)
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	c := newTestController(t, DefaultRules())
	token := startRound(t, c)
	c.RegisterHit(core.ItemCarrot)

	before := c.State()
	changed, effects := c.Start()
	if changed || len(effects) != 0 {
		t.Errorf("Start while running should be a no-op, got changed=%v effects=%v", changed, effects)
	}
	if c.State() != before {
		t.Errorf("state changed: before %+v, after %+v", before, c.State())
	}

	// The first countdown is still live
	if changed, _ := c.Tick(token); !changed {
		t.Error("running round's tick should still be accepted")
	}
}

func TestHittingEveryCarrotWins(t *testing.T) {
	for n := 1; n <= 20; n++ {
		c := newTestController(t, Rules{CarrotCount: n, BugCount: 3, Duration: 15})
		startRound(t, c)

		var last []Effect
		for i := 0; i < n; i++ {
			if c.State().Phase != PhaseRunning {
				t.Fatalf("n=%d: round ended early after %d hits", n, i)
			}
			_, last = c.RegisterHit(core.ItemCarrot)
		}

		s := c.State()
		if s.Phase != PhaseEnded || s.Outcome != OutcomeWin {
			t.Errorf("n=%d: expected Ended(Win), got %s/%s", n, s.Phase, s.Outcome)
		}
		if s.Score != n {
			t.Errorf("n=%d: score = %d", n, s.Score)
		}

		sounds := playedSounds(last)
		if len(sounds) != 2 || sounds[0] != core.SoundCarrotPull || sounds[1] != core.SoundWin {
			t.Errorf("n=%d: last hit should play carrot then win, got %v", n, sounds)
		}
	}
}

func TestBugLosesRegardlessOfScore(t *testing.T) {
	for score := 0; score < 15; score++ {
		c := newTestController(t, DefaultRules())
		startRound(t, c)
		for i := 0; i < score; i++ {
			c.RegisterHit(core.ItemCarrot)
		}

		changed, effects := c.RegisterHit(core.ItemBug)
		if !changed {
			t.Fatalf("score=%d: bug hit should change state", score)
		}

		s := c.State()
		if s.Phase != PhaseEnded || s.Outcome != OutcomeLose {
			t.Errorf("score=%d: expected Ended(Lose), got %s/%s", score, s.Phase, s.Outcome)
		}
		if s.Score != score {
			t.Errorf("score=%d: bug hit should not change score, got %d", score, s.Score)
		}

		sounds := playedSounds(effects)
		if len(sounds) != 1 || sounds[0] != core.SoundBugPull {
			t.Errorf("score=%d: bug hit should play the bug sound, got %v", score, sounds)
		}
	}
}

func TestTimeoutLosesWithCarrotsLeft(t *testing.T) {
	c := newTestController(t, Rules{CarrotCount: 5, BugCount: 2, Duration: 3})
	token := startRound(t, c)
	c.RegisterHit(core.ItemCarrot)

	for i := 0; i < 2; i++ {
		changed, effects := c.Tick(token)
		if !changed {
			t.Fatalf("tick %d should be accepted", i+1)
		}
		if _, ok := findEffect[ScheduleTick](effects); !ok {
			t.Fatalf("tick %d should schedule the next one", i+1)
		}
	}

	_, effects := c.Tick(token)
	s := c.State()
	if s.Phase != PhaseEnded || s.Outcome != OutcomeLose || s.Remaining != 0 {
		t.Errorf("expected Ended(Lose) at 0, got %+v", s)
	}
	if _, ok := findEffect[ScheduleTick](effects); ok {
		t.Error("final tick must not schedule another")
	}
	if _, ok := findEffect[CancelTimer](effects); !ok {
		t.Error("final tick should cancel the timer")
	}
}

func TestTimeoutWinsWithFullScore(t *testing.T) {
	c := newTestController(t, Rules{CarrotCount: 2, BugCount: 1, Duration: 1})
	token := startRound(t, c)

	// Unreachable through RegisterHit (the last carrot ends the round first),
	// but the countdown rule must still award the win.
	c.state.Score = 2

	c.Tick(token)
	s := c.State()
	if s.Phase != PhaseEnded || s.Outcome != OutcomeWin {
		t.Errorf("expected Ended(Win), got %s/%s", s.Phase, s.Outcome)
	}
}

func TestInvalidTransitionsAreNoops(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		c := newTestController(t, DefaultRules())
		before := c.State()

		for _, ev := range []Event{StopEvent{}, TickEvent{Token: 1}, HitEvent{Kind: core.ItemCarrot}, HitEvent{Kind: core.ItemBug}} {
			changed, effects := c.Dispatch(ev)
			if changed || len(effects) != 0 {
				t.Errorf("%T while idle should be a no-op", ev)
			}
		}
		if c.State() != before {
			t.Errorf("idle state changed: %+v -> %+v", before, c.State())
		}
	})

	t.Run("ended", func(t *testing.T) {
		c := newTestController(t, DefaultRules())
		token := startRound(t, c)
		c.RegisterHit(core.ItemCarrot)
		c.RegisterHit(core.ItemBug)
		before := c.State()

		for _, ev := range []Event{StopEvent{}, TickEvent{Token: token}, HitEvent{Kind: core.ItemCarrot}, HitEvent{Kind: core.ItemBug}} {
			changed, effects := c.Dispatch(ev)
			if changed || len(effects) != 0 {
				t.Errorf("%T while ended should be a no-op", ev)
			}
		}
		if c.State() != before {
			t.Errorf("ended state changed: %+v -> %+v", before, c.State())
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		c := newTestController(t, DefaultRules())
		startRound(t, c)
		if changed, _ := c.RegisterHit(core.ItemKind(99)); changed {
			t.Error("unknown item kind should be ignored")
		}
	})
}

func TestScenarioFastWin(t *testing.T) {
	c := newTestController(t, Rules{CarrotCount: 15, BugCount: 10, Duration: 15})
	token := startRound(t, c)

	// 15 carrots over 10 seconds
	hits := 0
	for sec := 0; sec < 10; sec++ {
		for j := 0; j < 2 && hits < 14; j++ {
			c.RegisterHit(core.ItemCarrot)
			hits++
		}
		c.Tick(token)
	}
	if c.State().Phase != PhaseRunning {
		t.Fatalf("round should still run before hit #15, got %s", c.State().Phase)
	}

	_, effects := c.RegisterHit(core.ItemCarrot)
	s := c.State()
	if s.Phase != PhaseEnded || s.Outcome != OutcomeWin {
		t.Fatalf("hit #15 should win, got %s/%s", s.Phase, s.Outcome)
	}
	if c.TimerArmed() {
		t.Error("timer should be cancelled at the win")
	}

	ended, ok := findEffect[RoundEnded](effects)
	if !ok || ended.Elapsed != 10 || ended.Score != 15 {
		t.Errorf("RoundEnded = %+v, expected score 15 after 10s", ended)
	}

	// Remaining callbacks are suppressed
	for i := 0; i < 5; i++ {
		if changed, _ := c.Tick(token); changed {
			t.Fatal("tick after win must be ignored")
		}
	}
	if c.State() != s {
		t.Errorf("state changed after win: %+v -> %+v", s, c.State())
	}
}

func TestScenarioBugAtSecondThree(t *testing.T) {
	c := newTestController(t, Rules{CarrotCount: 15, BugCount: 10, Duration: 15})
	token := startRound(t, c)

	for i := 0; i < 3; i++ {
		c.Tick(token)
	}
	c.RegisterHit(core.ItemBug)

	s := c.State()
	if s.Phase != PhaseEnded || s.Outcome != OutcomeLose || s.Remaining != 12 {
		t.Fatalf("expected Ended(Lose) with 12s left, got %+v", s)
	}

	for i := 0; i < 15; i++ {
		c.Tick(token)
	}
	if c.State() != s {
		t.Errorf("ticks after loss altered state: %+v", c.State())
	}
}

func TestScenarioTimeoutWithTenCarrots(t *testing.T) {
	c := newTestController(t, Rules{CarrotCount: 15, BugCount: 10, Duration: 15})
	token := startRound(t, c)

	for i := 0; i < 10; i++ {
		c.RegisterHit(core.ItemCarrot)
	}
	for i := 0; i < 15; i++ {
		c.Tick(token)
	}

	s := c.State()
	if s.Phase != PhaseEnded || s.Outcome != OutcomeLose {
		t.Errorf("expected Ended(Lose), got %s/%s", s.Phase, s.Outcome)
	}
	if s.Score != 10 {
		t.Errorf("score should stay at 10, got %d", s.Score)
	}
}

func TestStopMidRound(t *testing.T) {
	c := newTestController(t, DefaultRules())
	token := startRound(t, c)
	c.RegisterHit(core.ItemCarrot)
	c.Tick(token)

	changed, effects := c.Stop()
	if !changed {
		t.Fatal("Stop while running should change state")
	}

	s := c.State()
	if s.Phase != PhaseEnded || s.Outcome != OutcomeNone {
		t.Errorf("expected neutral Ended, got %s/%s", s.Phase, s.Outcome)
	}

	sounds := playedSounds(effects)
	if len(sounds) != 1 || sounds[0] != core.SoundAlert {
		t.Errorf("Stop should only play the alert, got %v", sounds)
	}
	if stop, ok := findEffect[StopSound](effects); !ok || stop.Sound != core.SoundBackground {
		t.Error("Stop should stop the background loop")
	}
	if c.Projection().Prompt != PromptReplay {
		t.Errorf("Stop should show the replay prompt, got %q", c.Projection().Prompt)
	}
	if changed, _ := c.Tick(token); changed {
		t.Error("tick after stop must be ignored")
	}
}

func TestStaleTickAfterRestart(t *testing.T) {
	c := newTestController(t, Rules{CarrotCount: 3, BugCount: 1, Duration: 5})
	first := startRound(t, c)
	c.Stop()

	second := startRound(t, c)
	if second == first {
		t.Fatal("restart must issue a fresh timer token")
	}

	if changed, _ := c.Tick(first); changed {
		t.Error("tick from the previous round must not touch the new one")
	}
	if c.State().Remaining != 5 {
		t.Errorf("remaining = %d, expected 5", c.State().Remaining)
	}

	if changed, _ := c.Tick(second); !changed {
		t.Error("tick from the current round should be accepted")
	}
	if c.State().Remaining != 4 {
		t.Errorf("remaining = %d, expected 4", c.State().Remaining)
	}
}

func TestLastCarrotBeatsSimultaneousTimeout(t *testing.T) {
	c := newTestController(t, Rules{CarrotCount: 2, BugCount: 1, Duration: 2})
	token := startRound(t, c)

	c.RegisterHit(core.ItemCarrot)
	c.Tick(token) // 1 second left

	// The click lands first; the tick that would have reached zero is stale.
	c.RegisterHit(core.ItemCarrot)
	c.Tick(token)

	s := c.State()
	if s.Outcome != OutcomeWin || s.Remaining != 1 {
		t.Errorf("expected Win with 1s on the clock, got %+v", s)
	}
}

func TestRestartResetsState(t *testing.T) {
	c := newTestController(t, Rules{CarrotCount: 4, BugCount: 1, Duration: 6})
	token := startRound(t, c)
	c.RegisterHit(core.ItemCarrot)
	c.Tick(token)
	c.RegisterHit(core.ItemBug)

	startRound(t, c)
	s := c.State()
	if s.Phase != PhaseRunning || s.Outcome != OutcomeNone || s.Score != 0 || s.Remaining != 6 {
		t.Errorf("restart should reset state, got %+v", s)
	}
	if c.CarrotsLeft() != 4 {
		t.Errorf("CarrotsLeft() = %d, expected 4", c.CarrotsLeft())
	}
}

func TestScoreNeverExceedsCarrotCount(t *testing.T) {
	c := newTestController(t, Rules{CarrotCount: 3, BugCount: 0, Duration: 10})
	startRound(t, c)

	for i := 0; i < 10; i++ {
		c.RegisterHit(core.ItemCarrot)
	}
	if c.State().Score != 3 {
		t.Errorf("score = %d, expected 3", c.State().Score)
	}
}

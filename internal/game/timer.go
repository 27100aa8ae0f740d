package game

import "time"

// TickInterval is the countdown granularity.
const TickInterval = time.Second

// TimerToken identifies one armed countdown.
// Tokens are never reused within a Timer.
type TimerToken uint64

// Timer is a cancellable countdown handle.
//
// The scheduler outside the controller cannot retract a tick it already
// queued, so cancellation works by invalidating the token: a tick is only
// honored while its token is the latest one and the timer is armed.
type Timer struct {
	token TimerToken
	armed bool
}

// Arm invalidates any previous countdown and returns a fresh token.
func (t *Timer) Arm() TimerToken {
	t.token++
	t.armed = true
	return t.token
}

// Cancel invalidates the current token. Safe to call when not armed.
func (t *Timer) Cancel() {
	t.armed = false
}

// Armed reports whether a countdown is live.
func (t *Timer) Armed() bool {
	return t.armed
}

// Accepts reports whether a tick carrying token should be honored.
func (t *Timer) Accepts(token TimerToken) bool {
	return t.armed && token == t.token
}

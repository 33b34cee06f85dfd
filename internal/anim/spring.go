// Package anim provides frame-clock driven physics animations. Animations
// never block: each is advanced from the frame loop with the frame's
// timestamp, the same way playback-style state is advanced once per frame.
package anim

import (
	"math"
	"time"
)

// Integration substep. A fixed substep keeps the spring stable regardless
// of how uneven the frame times are.
const springSubstep = 1.0 / 240.0

// maxFrameDelta caps the time advanced in a single frame so a stalled
// window does not make the spring jump or blow up when frames resume.
const maxFrameDelta = 1.0 / 15.0

const settleEpsilon = 0.05

// Spring animates a value toward a target with a damped spring. The zero
// value is not usable; construct with NewSpring.
type Spring struct {
	stiffness float64
	damping   float64

	value    float64
	target   float64
	velocity float64

	// direction is the sign of (target - value) at start; used to clamp
	// overshoot so the value never crosses its target.
	direction float64

	running    bool
	lastUpdate time.Time
}

// NewSpring creates a spring with the given stiffness and damping
// coefficients (per-second units).
func NewSpring(stiffness, damping float64) *Spring {
	return &Spring{stiffness: stiffness, damping: damping}
}

// OpenSpring returns the spring used for the open/close progress morph.
func OpenSpring() *Spring { return NewSpring(380, 38) }

// SettleSpring returns the crisp, heavily damped spring used to return a
// released drag back to rest.
func SettleSpring() *Spring { return NewSpring(900, 62) }

// ChromeSpring returns the fast spring used for header/footer show and
// hide transitions.
func ChromeSpring() *Spring { return NewSpring(1200, 70) }

// Start begins animating from the given value toward target. Any
// animation already in flight on this spring is superseded.
func (s *Spring) Start(from, target float64, now time.Time) {
	s.StartWithVelocity(from, target, 0, now)
}

// StartWithVelocity begins animating with an initial velocity, used when
// the spring takes over from a gesture release.
func (s *Spring) StartWithVelocity(from, target, velocity float64, now time.Time) {
	s.value = from
	s.target = target
	s.velocity = velocity
	s.direction = sign(target - from)
	s.running = true
	s.lastUpdate = now
}

// Set snaps the value without animating and cancels any in-flight motion.
func (s *Spring) Set(v float64) {
	s.value = v
	s.target = v
	s.velocity = 0
	s.running = false
}

// Advance integrates the spring up to the given frame time. Returns true
// while the spring is still moving and needs further frames.
func (s *Spring) Advance(now time.Time) bool {
	if !s.running {
		return false
	}

	dt := now.Sub(s.lastUpdate).Seconds()
	s.lastUpdate = now
	if dt <= 0 {
		return true
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	for dt > 0 {
		h := springSubstep
		if dt < h {
			h = dt
		}
		dt -= h

		accel := -s.stiffness*(s.value-s.target) - s.damping*s.velocity
		s.velocity += accel * h
		s.value += s.velocity * h

		// Never pass the target. The morph must not bounce beyond the
		// fully-open or fully-closed pose.
		if s.direction != 0 && sign(s.target-s.value) != s.direction {
			s.finish()
			return false
		}
	}

	if math.Abs(s.value-s.target) < settleEpsilon && math.Abs(s.velocity) < settleEpsilon {
		s.finish()
		return false
	}
	return true
}

func (s *Spring) finish() {
	s.value = s.target
	s.velocity = 0
	s.running = false
}

// Value returns the current animated value.
func (s *Spring) Value() float64 { return s.value }

// Target returns the value the spring is heading toward.
func (s *Spring) Target() float64 { return s.target }

// Running reports whether the spring still needs frames.
func (s *Spring) Running() bool { return s.running }

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

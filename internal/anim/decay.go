package anim

import (
	"math"
	"time"
)

// DismissDecayRate is the per-second exponential velocity decay used for
// fling dismissal. It is deliberately gentle: a fling should carry the
// image off screen, not stall halfway.
const DismissDecayRate = 0.3

// Decay animates a value from an initial velocity, decelerating
// exponentially. With a gentle rate the decay would effectively never
// come to rest on its own, so callers either watch the value and Stop the
// decay, or bound it with a maximum travel distance. Both are used for
// dismissal: the offset watcher is the primary terminator and the travel
// bound is the backstop.
type Decay struct {
	rate float64

	value    float64
	velocity float64

	maxTravel float64
	traveled  float64

	running    bool
	lastUpdate time.Time
}

// NewDecay creates a decay animation with the given velocity decay rate
// (per second).
func NewDecay(rate float64) *Decay {
	return &Decay{rate: rate}
}

// Start begins decaying from the given value with the given velocity in
// units per second. maxTravel bounds the total distance covered; 0 means
// unbounded.
func (d *Decay) Start(from, velocity, maxTravel float64, now time.Time) {
	d.value = from
	d.velocity = velocity
	d.maxTravel = maxTravel
	d.traveled = 0
	d.running = true
	d.lastUpdate = now
}

// Advance integrates up to the frame time. Returns true while running.
func (d *Decay) Advance(now time.Time) bool {
	if !d.running {
		return false
	}

	dt := now.Sub(d.lastUpdate).Seconds()
	d.lastUpdate = now
	if dt <= 0 {
		return true
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	// Closed-form integration of v' = -rate*v over the frame.
	var delta float64
	if d.rate > 0 {
		decayed := d.velocity * math.Exp(-d.rate*dt)
		delta = (d.velocity - decayed) / d.rate
		d.velocity = decayed
	} else {
		delta = d.velocity * dt
	}

	if d.maxTravel > 0 && d.traveled+math.Abs(delta) >= d.maxTravel {
		remaining := d.maxTravel - d.traveled
		d.value += sign(delta) * remaining
		d.traveled = d.maxTravel
		d.running = false
		return false
	}

	d.value += delta
	d.traveled += math.Abs(delta)
	return true
}

// Stop cancels the decay in place. The value keeps whatever it reached.
func (d *Decay) Stop() { d.running = false }

// Value returns the current animated value.
func (d *Decay) Value() float64 { return d.value }

// Running reports whether the decay still needs frames.
func (d *Decay) Running() bool { return d.running }

// Package interact handles pointer interaction for the lightbox: drag
// velocity estimation, tap classification, and pinch/scroll zoom.
package interact

import "time"

// velocityWindow is how far back samples count toward the estimate.
// Older samples describe where the gesture was, not where it is going.
const velocityWindow = 100 * time.Millisecond

const maxSamples = 20

type sample struct {
	at  time.Duration
	pos float64
}

// VelocityTracker estimates the velocity of a pointer axis from recent
// position samples. Feed it every drag event and read the velocity at
// release to classify fling vs settle.
type VelocityTracker struct {
	samples []sample
}

// NewVelocityTracker creates an empty tracker.
func NewVelocityTracker() *VelocityTracker {
	return &VelocityTracker{samples: make([]sample, 0, maxSamples)}
}

// Add records a position at the event timestamp.
func (v *VelocityTracker) Add(at time.Duration, pos float64) {
	v.samples = append(v.samples, sample{at: at, pos: pos})
	if len(v.samples) > maxSamples {
		v.samples = v.samples[1:]
	}
}

// Velocity returns the estimated velocity in position units per second,
// computed over the samples inside the recency window. Fewer than two
// usable samples yield zero.
func (v *VelocityTracker) Velocity() float64 {
	if len(v.samples) < 2 {
		return 0
	}

	latest := v.samples[len(v.samples)-1]
	first := latest
	for i := len(v.samples) - 2; i >= 0; i-- {
		if latest.at-v.samples[i].at > velocityWindow {
			break
		}
		first = v.samples[i]
	}

	dt := (latest.at - first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (latest.pos - first.pos) / dt
}

// Reset discards all samples. Call at gesture start.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

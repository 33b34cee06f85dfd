package state

import (
	"math"
	"time"

	"github.com/elektrokombinacija/lightbox/internal/anim"
)

// FlingVelocityThreshold is the release speed, in pixels per second,
// above which a drag becomes a fling dismissal instead of settling back.
const FlingVelocityThreshold = 1000.0

// flingMinSpeed is the minimum effective fling speed. A release just over
// the threshold is boosted so the exit still feels decisive.
const flingMinSpeed = 2400.0

// flingTravelFactor bounds the decay's travel to this multiple of the
// screen height. The magnitude watcher normally cancels the decay well
// before the bound; the bound guarantees termination regardless.
const flingTravelFactor = 2.0

// Phase is the dismiss gesture state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseSettling
	PhaseFlinging
)

func (p Phase) String() string {
	return [...]string{"Idle", "Dragging", "Settling", "Flinging"}[p]
}

// Dismiss is the vertical pan-to-dismiss state machine. It owns the drag
// offset and the flying-away flag; everything else only reads them.
type Dismiss struct {
	phase  Phase
	offset float64

	settle *anim.Spring
	decay  *anim.Decay

	flyingAway bool
	flyAwayHit bool
	closeOnce  bool
}

// NewDismiss creates the machine in the idle phase.
func NewDismiss() *Dismiss {
	return &Dismiss{
		settle: anim.SettleSpring(),
		decay:  anim.NewDecay(anim.DismissDecayRate),
	}
}

// Start begins a drag. Only valid from Idle; a new gesture supersedes any
// settle animation still running on the offset.
func (d *Dismiss) Start() {
	if d.flyingAway {
		return
	}
	d.phase = PhaseDragging
	d.offset = 0
	d.settle.Set(0)
}

// Update records the live pan translation. open guards against a gesture
// continuing into a stale close animation: updates are dropped unless the
// lightbox is fully open.
func (d *Dismiss) Update(translationY float64, open bool) {
	if d.phase != PhaseDragging || !open {
		return
	}
	d.offset = translationY
}

// Release classifies the gesture end. Fast releases fling the image off
// screen seeded with the gesture velocity; everything else springs the
// offset back to zero.
func (d *Dismiss) Release(velocityY float64, screenH float64, now time.Time) {
	if d.phase != PhaseDragging {
		return
	}

	if math.Abs(velocityY) > FlingVelocityThreshold {
		v := velocityY
		if math.Abs(v) < flingMinSpeed {
			v = math.Copysign(flingMinSpeed, v)
		}
		d.phase = PhaseFlinging
		d.flyingAway = true
		d.decay.Start(d.offset, v, flingTravelFactor*math.Max(screenH, 1), now)
		return
	}

	d.phase = PhaseSettling
	d.settle.StartWithVelocity(d.offset, 0, velocityY, now)
}

// Advance drives the in-flight settle or fling animation and runs the
// magnitude watcher. The watcher fires when the screen size is
// unavailable or the offset left the screen entirely; it must cancel the
// decay, which otherwise never terminates on its own. Returns true while
// an animation needs frames.
func (d *Dismiss) Advance(now time.Time, screenH float64) bool {
	switch d.phase {
	case PhaseSettling:
		running := d.settle.Advance(now)
		d.offset = d.settle.Value()
		if !running {
			d.phase = PhaseIdle
			d.offset = 0
		}
		return running

	case PhaseFlinging:
		running := d.decay.Running() && d.decay.Advance(now)
		d.offset = d.decay.Value()

		if screenH <= 0 || math.Abs(d.offset) > screenH {
			d.decay.Stop()
			if !d.closeOnce {
				d.closeOnce = true
				d.flyAwayHit = true
			}
			d.phase = PhaseIdle
			return false
		}
		if !running {
			// Travel bound reached before the watcher fired.
			if !d.closeOnce {
				d.closeOnce = true
				d.flyAwayHit = true
			}
			d.phase = PhaseIdle
			return false
		}
		return true
	}
	return false
}

// ConsumeFlyAway reports, exactly once per fling, that the fly-away
// completed and the session should close.
func (d *Dismiss) ConsumeFlyAway() bool {
	hit := d.flyAwayHit
	d.flyAwayHit = false
	return hit
}

// Reset returns the machine to idle with a zero offset. Called when a
// session is mounted or torn down.
func (d *Dismiss) Reset() {
	d.phase = PhaseIdle
	d.offset = 0
	d.flyingAway = false
	d.flyAwayHit = false
	d.closeOnce = false
	d.settle.Set(0)
	d.decay.Stop()
}

// Offset returns the live vertical drag offset in pixels.
func (d *Dismiss) Offset() float64 { return d.offset }

// Phase returns the current gesture phase.
func (d *Dismiss) Phase() Phase { return d.phase }

// FlyingAway reports that a fling exit is in flight; pointer interaction
// is suppressed for the rest of the session.
func (d *Dismiss) FlyingAway() bool { return d.flyingAway }

// Dragging reports whether a pan is actively tracking the pointer.
func (d *Dismiss) Dragging() bool { return d.phase == PhaseDragging }

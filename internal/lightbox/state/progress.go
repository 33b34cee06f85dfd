package state

import (
	"time"

	"github.com/elektrokombinacija/lightbox/internal/anim"
)

// Progress owns the open-progress pair: the continuous value in [0,1]
// driving the morph and the discrete target used where continuous
// interpolation is numerically unstable. The two are only ever written
// together through SetTarget, so no observer can see them disagree.
type Progress struct {
	spring *anim.Spring
	target int

	wasOpen    bool
	closedEdge bool
}

// NewProgress creates a progress controller at the fully closed pose.
func NewProgress() *Progress {
	return &Progress{spring: anim.OpenSpring()}
}

// SetTarget sets the discrete target and the continuous value's
// destination atomically. With animate the value springs to the target
// without overshoot; otherwise it snaps.
func (p *Progress) SetTarget(target int, animate bool, now time.Time) {
	if target != 0 {
		target = 1
	}
	p.target = target

	if animate {
		p.spring.Start(p.spring.Value(), float64(target), now)
		return
	}
	p.spring.Set(float64(target))
	p.observe()
}

// Advance integrates the open animation. Returns true while animating.
func (p *Progress) Advance(now time.Time) bool {
	running := p.spring.Advance(now)
	p.observe()
	return running
}

// observe tracks the nonzero->0 transition of the continuous value.
func (p *Progress) observe() {
	v := p.spring.Value()
	if v > 0 {
		p.wasOpen = true
		return
	}
	if p.wasOpen {
		p.wasOpen = false
		p.closedEdge = true
	}
}

// ConsumeClosedEdge reports, once per transition, that the progress
// returned to zero after having been open.
func (p *Progress) ConsumeClosedEdge() bool {
	e := p.closedEdge
	p.closedEdge = false
	return e
}

// Value returns the continuous open progress.
func (p *Progress) Value() float64 { return p.spring.Value() }

// Target returns the discrete progress target.
func (p *Progress) Target() int { return p.target }

// Open reports whether the lightbox is fully open and at rest.
func (p *Progress) Open() bool { return p.target == 1 && p.spring.Value() == 1 }

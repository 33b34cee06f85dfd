package state

import (
	"time"

	"github.com/elektrokombinacija/lightbox/internal/anim"
)

// CollapsedCaptionLines is how many lines a collapsed caption shows.
const CollapsedCaptionLines = 3

// Caption controls the expand/collapse state of the footer caption. A
// tap toggles expansion, but a tap that lands while the caption's own
// scroll container is still in momentum must be ignored: that "tap" is
// just the scroll decelerating under the finger.
type Caption struct {
	present   bool
	expanded  bool
	scrolling bool
	reveal    *anim.Spring
}

// NewCaption creates the controller for a caption-less page.
func NewCaption() *Caption {
	return &Caption{reveal: anim.ChromeSpring()}
}

// Reset prepares for a new page. The caption starts collapsed.
func (c *Caption) Reset(present bool) {
	c.present = present
	c.expanded = false
	c.scrolling = false
	c.reveal.Set(0)
}

// ScrollBegan marks the caption's scroll container as moving.
func (c *Caption) ScrollBegan() { c.scrolling = true }

// ScrollEnded marks the momentum as finished.
func (c *Caption) ScrollEnded() { c.scrolling = false }

// Tap toggles expansion unless the container is still scrolling.
// Returns whether the state changed.
func (c *Caption) Tap(now time.Time) bool {
	if !c.present || c.scrolling {
		return false
	}
	c.expanded = !c.expanded
	target := 0.0
	if c.expanded {
		target = 1
	}
	c.reveal.Start(c.reveal.Value(), target, now)
	return true
}

// Advance drives the expansion transition. Returns true while animating.
func (c *Caption) Advance(now time.Time) bool { return c.reveal.Advance(now) }

// Present reports whether the current page has a caption at all.
func (c *Caption) Present() bool { return c.present }

// Expanded reports the logical expansion state.
func (c *Caption) Expanded() bool { return c.expanded }

// Fraction returns the animated expansion in [0,1] for layout blending
// between the collapsed and expanded caption heights.
func (c *Caption) Fraction() float64 { return c.reveal.Value() }

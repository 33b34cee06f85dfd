package state

import (
	"time"

	"github.com/elektrokombinacija/lightbox/internal/anim"
)

// Chrome derives header/footer visibility from gesture state, zoom state
// and tap toggles, and animates the show/hide transition.
type Chrome struct {
	showControls bool
	visible      bool
	fade         *anim.Spring
}

// NewChrome creates the controller with controls shown.
func NewChrome() *Chrome {
	c := &Chrome{fade: anim.ChromeSpring()}
	c.Reset()
	return c
}

// Reset shows the controls immediately, without animation.
func (c *Chrome) Reset() {
	c.showControls = true
	c.visible = true
	c.fade.Set(1)
}

// Toggle flips the tap-to-show-controls flag.
func (c *Chrome) Toggle() { c.showControls = !c.showControls }

// ForceHide clears the flag, used when a zoom gesture begins.
func (c *Chrome) ForceHide() { c.showControls = false }

// Sync recomputes visibility from the current frame's inputs and starts
// the fade when it changed. Chrome is only visible while the controls
// flag is set, no dismiss drag is displacing the image, and nothing is
// zoomed.
func (c *Chrome) Sync(dismissOffset float64, zoomed bool, now time.Time) {
	visible := c.showControls && dismissOffset == 0 && !zoomed
	if visible == c.visible {
		return
	}
	c.visible = visible
	target := 0.0
	if visible {
		target = 1
	}
	c.fade.Start(c.fade.Value(), target, now)
}

// Advance drives the fade. Returns true while animating.
func (c *Chrome) Advance(now time.Time) bool { return c.fade.Advance(now) }

// Visible reports the derived visibility (the fade may still be running).
func (c *Chrome) Visible() bool { return c.visible }

// Fraction returns the animated opacity in [0,1]. Hit-testing must be
// disabled whenever this is 0 so hidden chrome never swallows touches.
func (c *Chrome) Fraction() float64 { return c.fade.Value() }

// HitTestable reports whether the chrome may register pointer areas.
func (c *Chrome) HitTestable() bool { return c.visible && c.Fraction() > 0 }

package state

import (
	"testing"
	"time"
)

func TestPageChangeResetsZoom(t *testing.T) {
	p := NewPages()
	p.Reset(3, 0)
	p.SetScaled(0, true)

	p.SetActive(1)
	if p.Scaled(1) {
		t.Error("newly entered page should start unzoomed")
	}
	if p.Active() != 1 {
		t.Errorf("active = %d, want 1", p.Active())
	}
	// Returning to the zoomed page clears it too.
	p.SetActive(0)
	if p.Scaled(0) {
		t.Error("re-entered page should be reset to unzoomed")
	}
}

func TestAnyScaledSuppression(t *testing.T) {
	p := NewPages()
	p.Reset(3, 1)

	if p.AnyScaled() {
		t.Error("fresh coordinator should have no zoomed pages")
	}
	p.SetScaled(2, true)
	if !p.AnyScaled() {
		t.Error("AnyScaled should see page 2")
	}
	if p.ActiveScaled() {
		t.Error("active page 1 is not zoomed")
	}
	p.SetScaled(1, true)
	if !p.ActiveScaled() {
		t.Error("active page now zoomed")
	}
}

func TestSetActiveOutOfRangeIgnored(t *testing.T) {
	p := NewPages()
	p.Reset(2, 0)
	p.SetActive(5)
	p.SetActive(-1)
	if p.Active() != 0 {
		t.Errorf("active = %d, out-of-range changes must be ignored", p.Active())
	}
}

func TestChromeVisibilityRule(t *testing.T) {
	c := NewChrome()
	now := time.Unix(0, 0)

	if !c.Visible() {
		t.Fatal("chrome starts visible")
	}

	// A live drag hides the chrome even with controls on.
	c.Sync(40, false, now)
	if c.Visible() {
		t.Error("chrome visible while dismiss offset nonzero")
	}
	c.Sync(0, false, now)
	if !c.Visible() {
		t.Error("chrome should return once the offset is back at 0")
	}

	// Zoom hides regardless of the flag.
	c.Sync(0, true, now)
	if c.Visible() {
		t.Error("chrome visible while zoomed")
	}

	// Tap toggle.
	c.Sync(0, false, now)
	c.Toggle()
	c.Sync(0, false, now)
	if c.Visible() {
		t.Error("chrome visible after toggle off")
	}
}

func TestChromeHitTestingDisabledWhenHidden(t *testing.T) {
	c := NewChrome()
	now := time.Unix(0, 0)
	c.ForceHide()
	c.Sync(0, false, now)

	for i := 0; i < 240; i++ {
		now = now.Add(time.Second / 60)
		c.Advance(now)
	}
	if c.Fraction() != 0 {
		t.Errorf("fade fraction = %v after hide, want 0", c.Fraction())
	}
	if c.HitTestable() {
		t.Error("hidden chrome must not register pointer areas")
	}
}

func TestCaptionTapVsMomentum(t *testing.T) {
	c := NewCaption()
	c.Reset(true)
	now := time.Unix(0, 0)

	if c.Expanded() {
		t.Fatal("caption starts collapsed")
	}

	// Tap at rest toggles.
	if !c.Tap(now) {
		t.Fatal("tap at rest should toggle")
	}
	if !c.Expanded() {
		t.Error("caption should be expanded")
	}

	// Tap during momentum scroll is ignored.
	c.ScrollBegan()
	if c.Tap(now) {
		t.Error("tap during momentum must not toggle")
	}
	if !c.Expanded() {
		t.Error("expansion state changed during momentum")
	}
	c.ScrollEnded()
	if !c.Tap(now) {
		t.Error("tap after momentum ended should toggle")
	}
	if c.Expanded() {
		t.Error("caption should be collapsed again")
	}
}

func TestCaptionAbsent(t *testing.T) {
	c := NewCaption()
	c.Reset(false)
	if c.Tap(time.Unix(0, 0)) {
		t.Error("tap on an absent caption must be a no-op")
	}
}

func TestCaptionRevealAnimates(t *testing.T) {
	c := NewCaption()
	c.Reset(true)
	now := time.Unix(0, 0)
	c.Tap(now)

	now = now.Add(30 * time.Millisecond)
	c.Advance(now)
	f := c.Fraction()
	if f <= 0 || f >= 1 {
		t.Errorf("fraction = %v mid-transition, want (0,1)", f)
	}

	for i := 0; i < 240; i++ {
		now = now.Add(time.Second / 60)
		c.Advance(now)
	}
	if c.Fraction() != 1 {
		t.Errorf("fraction = %v after transition, want 1", c.Fraction())
	}
}

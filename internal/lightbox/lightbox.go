// Package lightbox ties the geometry interpolator, the gesture state
// machines, and the overlay widgets into one embeddable component. The
// host application owns the window loop; it calls Frame every frame the
// lightbox is mounted and ProcessEffects once the frame is submitted.
package lightbox

import (
	"log"
	"time"

	"gioui.org/layout"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/lightbox/internal/core"
	"github.com/elektrokombinacija/lightbox/internal/lightbox/geom"
	"github.com/elektrokombinacija/lightbox/internal/lightbox/state"
	"github.com/elektrokombinacija/lightbox/internal/lightbox/widgets"
)

// Insets are the window's unusable edges in pixels, typically converted
// from the frame event's system insets.
type Insets struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Callbacks are invoked from the application context by ProcessEffects,
// never during layout. Any of them may be nil.
type Callbacks struct {
	// OnRequestClose fires exactly once per completed fling dismissal.
	OnRequestClose func()
	OnPressSave    func(uri string)
	OnPressShare   func(uri string)
}

// Options configures a Lightbox instance.
type Options struct {
	// Images resolves URIs to uploaded textures; it must not block.
	Images widgets.ImageProvider
	// Capabilities selects the resize strategy for the open morph.
	Capabilities geom.Capabilities
	// ReducedMotion is sampled at open time. Nil means motion allowed.
	ReducedMotion func() bool
	Callbacks     Callbacks
	// Debug enables diagnostics for degraded paths.
	Debug bool
}

// Lightbox is one lightbox component bound to one window.
type Lightbox struct {
	st      *state.State
	overlay *widgets.Overlay
	opts    Options

	// Last good safe area, used when a frame arrives before the window
	// has real dimensions.
	cachedSafe core.Rect
	haveSafe   bool
}

// New creates a lightbox. The zero safe-area cache is replaced on the
// first frame with nonzero constraints.
func New(opts Options) *Lightbox {
	st := state.NewState()
	return &Lightbox{
		st:      st,
		overlay: widgets.NewOverlay(st, opts.Images, geom.ResolveStrategy(opts.Capabilities)),
		opts:    opts,
	}
}

// Open mounts a session and starts the open transition.
func (lb *Lightbox) Open(session *core.Session, now time.Time) {
	if session == nil || session.Len() == 0 {
		return
	}
	if lb.opts.ReducedMotion != nil {
		lb.st.ReducedMotion = lb.opts.ReducedMotion()
	}
	lb.st.Open(session, now)
	lb.overlay.ResetForSession()
}

// Close starts the close transition. The content stays mounted until the
// progress reaches zero and the dismissal effect drains.
func (lb *Lightbox) Close(now time.Time) { lb.st.Close(now) }

// Mounted reports whether the lightbox currently owns the screen.
func (lb *Lightbox) Mounted() bool { return lb.st.Mounted() }

// ActiveIndex returns the current page, or -1 when unmounted.
func (lb *Lightbox) ActiveIndex() int {
	if !lb.st.Mounted() {
		return -1
	}
	return lb.st.Pages.Active()
}

// Step pages forward (+1) or backward (-1) with animation. Keyboard
// paging goes through here.
func (lb *Lightbox) Step(delta int, now time.Time) {
	if !lb.st.Mounted() || lb.st.Pages.ActiveScaled() {
		return
	}
	lb.overlay.SetPage(lb.st.Pages.Active()+delta, true, now)
}

// Frame advances all animations and lays out the overlay. It returns
// true while any animation is still running, in which case the caller
// should invalidate the window.
func (lb *Lightbox) Frame(gtx layout.Context, th *material.Theme, insets Insets) bool {
	if !lb.st.Mounted() {
		return false
	}

	safe := lb.safeArea(gtx, insets)
	screenH := float64(gtx.Constraints.Max.Y)

	animating := lb.st.Advance(gtx.Now, screenH)
	if lb.overlay.AdvancePager(gtx) {
		animating = true
	}

	lb.overlay.Layout(gtx, th, safe)
	return animating
}

// ProcessEffects drains queued side effects. Call from the application
// context after submitting the frame; window invalidation, unmounting,
// and host callbacks all happen here.
func (lb *Lightbox) ProcessEffects() {
	for {
		e, ok := lb.st.PollEffect()
		if !ok {
			return
		}
		switch e.Kind {
		case state.EffectDismissed:
			lb.st.ClearSession()
		case state.EffectCloseRequested:
			if lb.opts.Callbacks.OnRequestClose != nil {
				lb.opts.Callbacks.OnRequestClose()
			}
		case state.EffectSave:
			if lb.opts.Callbacks.OnPressSave != nil {
				lb.opts.Callbacks.OnPressSave(e.URI)
			}
		case state.EffectShare:
			if lb.opts.Callbacks.OnPressShare != nil {
				lb.opts.Callbacks.OnPressShare(e.URI)
			}
		}
	}
}

// safeArea derives the usable rect from the live constraints and insets.
// A degenerate frame (zero constraints during window setup) falls back
// to the last measured value so the morph target never collapses.
func (lb *Lightbox) safeArea(gtx layout.Context, insets Insets) core.Rect {
	w := float64(gtx.Constraints.Max.X)
	h := float64(gtx.Constraints.Max.Y)
	if w <= 0 || h <= 0 {
		if lb.opts.Debug {
			log.Printf("[WARN] degenerate frame constraints, using cached safe area")
		}
		if lb.haveSafe {
			return lb.cachedSafe
		}
		return core.Rect{}
	}
	safe := core.Rect{
		X: insets.Left,
		Y: insets.Top,
		W: w - insets.Left - insets.Right,
		H: h - insets.Top - insets.Bottom,
	}
	if safe.W <= 0 || safe.H <= 0 {
		if lb.haveSafe {
			return lb.cachedSafe
		}
		return core.Rect{}
	}
	lb.cachedSafe = safe
	lb.haveSafe = true
	return safe
}

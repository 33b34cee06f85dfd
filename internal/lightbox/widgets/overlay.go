package widgets

import (
	"image"
	"image/color"
	"math"
	"time"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/lightbox/internal/core"
	"github.com/elektrokombinacija/lightbox/internal/lightbox/geom"
	"github.com/elektrokombinacija/lightbox/internal/lightbox/interact"
	"github.com/elektrokombinacija/lightbox/internal/lightbox/state"
)

// pageGap is the empty gutter between carousel pages in pixels.
const pageGap = 24.0

// axisSlop is how far the pointer must travel before a drag commits to
// the horizontal (paging) or vertical (dismiss) axis.
const axisSlop = 12.0

type gestureAxis int

const (
	axisNone gestureAxis = iota
	axisHorizontal
	axisVertical
)

// Overlay is the fullscreen lightbox surface: scrim, paged image views,
// and chrome. It routes one pointer stream to the dismiss machine, the
// pager, or the zoomer depending on gesture axis and zoom state.
type Overlay struct {
	st       *state.State
	provider ImageProvider
	strategy geom.SizeStrategy

	pager *interact.Pager
	zoom  *interact.Zoomer

	header *Header
	footer *Footer

	tap    interact.TapDetector
	velX   *interact.VelocityTracker
	velY   *interact.VelocityTracker
	axis   gestureAxis
	startX float64
	startY float64
}

// NewOverlay creates the overlay bound to the shared state.
func NewOverlay(st *state.State, provider ImageProvider, strategy geom.SizeStrategy) *Overlay {
	o := &Overlay{
		st:       st,
		provider: provider,
		strategy: strategy,
		pager:    interact.NewPager(0, 0),
		zoom:     interact.NewZoomer(),
		velX:     interact.NewVelocityTracker(),
		velY:     interact.NewVelocityTracker(),
	}
	o.header = NewHeader(st)
	o.footer = NewFooter(st)

	o.pager.OnPageChange = func(page int) {
		o.st.Pages.SetActive(page)
		o.zoom.Reset()
		o.st.Caption.Reset(o.st.Session != nil && o.st.Session.At(page).Caption != "")
	}
	return o
}

// ResetForSession prepares the overlay for a freshly opened session.
func (o *Overlay) ResetForSession() {
	if o.st.Session == nil {
		return
	}
	o.pager.Reset(o.st.Session.Len(), o.st.Session.InitialIndex)
	o.zoom.Reset()
	o.axis = axisNone
	o.tap.Cancel()
}

// Layout renders the overlay for one frame.
func (o *Overlay) Layout(gtx layout.Context, th *material.Theme, safe core.Rect) layout.Dimensions {
	bounds := gtx.Constraints.Max
	session := o.st.Session
	if session == nil {
		return layout.Dimensions{Size: bounds}
	}

	progress := o.st.Progress.Value()
	offset := o.st.Dismiss.Offset()
	screenH := float64(bounds.Y)

	// Scrim darkens with progress and thins out as a dismiss drag pulls
	// the image away.
	fade := 1.0
	if screenH > 0 {
		fade = 1 - core.Clamp(math.Abs(offset)/screenH, 0, 1)
	}
	scrim := uint8(core.Clamp(progress*fade, 0, 1) * 255)
	paint.Fill(gtx.Ops, color.NRGBA{A: scrim})

	// Chrome visibility is re-derived every frame from the live values.
	o.st.Chrome.Sync(offset, o.st.Pages.ActiveScaled(), gtx.Now)

	if !o.st.Dismiss.FlyingAway() {
		o.handlePointer(gtx, bounds, safe, screenH)
	}

	o.layoutPages(gtx, session, safe, progress, offset)

	o.header.Layout(gtx, th)
	o.footer.Layout(gtx, th)

	return layout.Dimensions{Size: bounds}
}

// AdvancePager drives the page settle spring; the caller folds the
// result into its invalidate decision.
func (o *Overlay) AdvancePager(gtx layout.Context) bool {
	return o.pager.Advance(gtx.Now)
}

// SetPage jumps or animates the carousel to a page. Out-of-range pages
// clamp, so keyboard paging past the ends is a no-op.
func (o *Overlay) SetPage(page int, animate bool, now time.Time) {
	o.pager.SetPage(page, animate, now)
}

func (o *Overlay) layoutPages(gtx layout.Context, session *core.Session, safe core.Rect, progress, offset float64) {
	stride := safe.W + pageGap
	pos := o.pager.Pos()
	active := o.pager.Active()

	for i := 0; i < session.Len(); i++ {
		pageOffsetX := (float64(i) - pos) * stride
		if math.Abs(pageOffsetX) >= stride {
			continue
		}

		src := session.At(i)
		var frame geom.Frame
		var radius float64
		var zoom *interact.Zoomer

		if i == active {
			frame = geom.Interpolate(geom.Input{
				Progress:      progress,
				Target:        o.st.Progress.Target(),
				Thumb:         src.ThumbRect,
				SafeArea:      safe,
				Dims:          src.Dimensions,
				DismissOffset: offset,
				PixelRatio:    float64(gtx.Metric.PxPerDp),
				Strategy:      o.strategy,
			})
			if frame.Morphing {
				radius = shapeRadius(src.Shape, frame.BoxW(), frame.BoxH()) * (1 - core.Clamp(progress, 0, 1))
			}
			zoom = o.zoom
		} else {
			// Inactive pages hold the steady-state fullscreen pose; only
			// the active page morphs or follows the dismiss drag.
			frame = geom.Interpolate(geom.Input{
				Progress:   1,
				Target:     1,
				Thumb:      src.ThumbRect,
				SafeArea:   safe,
				Dims:       src.Dimensions,
				PixelRatio: float64(gtx.Metric.PxPerDp),
				Strategy:   o.strategy,
			})
		}

		pageView{
			src:          src,
			frame:        frame,
			safe:         safe,
			cornerRadius: radius,
			zoom:         zoom,
			pageOffsetX:  pageOffsetX,
		}.draw(gtx, o.provider)
	}
}

func (o *Overlay) handlePointer(gtx layout.Context, bounds image.Point, safe core.Rect, screenH float64) {
	area := clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, o)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: o,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		o.handlePointerEvent(gtx, pe, safe, screenH)
	}
}

func (o *Overlay) handlePointerEvent(gtx layout.Context, pe pointer.Event, safe core.Rect, screenH float64) {
	x := float64(pe.Position.X)
	y := float64(pe.Position.Y)

	switch pe.Kind {
	case pointer.Press:
		if !pe.Buttons.Contain(pointer.ButtonPrimary) {
			return
		}
		o.startX, o.startY = x, y
		o.axis = axisNone
		o.velX.Reset()
		o.velY.Reset()
		o.velX.Add(pe.Time, x)
		o.velY.Add(pe.Time, y)
		o.tap.Press(x, y, pe.Time)
		if o.zoom.IsZoomed() {
			o.zoom.StartPan(x, y)
		}

	case pointer.Drag:
		o.tap.Move(x, y)
		o.velX.Add(pe.Time, x)
		o.velY.Add(pe.Time, y)

		if o.zoom.Panning() {
			o.zoom.Pan(x, y)
			return
		}
		if o.axis == axisNone {
			o.pickAxis(x, y)
		}
		switch o.axis {
		case axisHorizontal:
			o.pager.MoveDrag(x, safe.W+pageGap)
		case axisVertical:
			o.st.Dismiss.Update(y-o.startY, o.st.Progress.Open())
		}

	case pointer.Release:
		kind := o.tap.Release(pe.Time)

		if o.zoom.Panning() {
			o.zoom.EndPan()
		}
		switch o.axis {
		case axisHorizontal:
			o.pager.EndDrag(o.velX.Velocity(), safe.W+pageGap, gtx.Now)
		case axisVertical:
			o.st.Dismiss.Release(o.velY.Velocity(), screenH, gtx.Now)
		}
		o.axis = axisNone

		switch kind {
		case interact.TapDouble:
			if o.st.Progress.Open() {
				o.zoom.ToggleDoubleTap(x, y)
				o.syncZoomState()
			}
		case interact.TapSingle:
			o.st.Chrome.Toggle()
		}

	case pointer.Cancel:
		o.tap.Cancel()
		o.zoom.EndPan()
		if o.axis == axisVertical {
			o.st.Dismiss.Release(0, screenH, gtx.Now)
		}
		o.axis = axisNone

	case pointer.Scroll:
		if !o.st.Progress.Open() {
			return
		}
		if pe.Scroll.Y == 0 {
			return
		}
		factor := 1.1
		if pe.Scroll.Y > 0 {
			factor = 1 / 1.1
		}
		o.zoom.ZoomBy(factor, x, y)
		o.syncZoomState()
	}
}

// pickAxis commits an undecided drag to paging or dismissal once the
// pointer clears the slop. Horizontal wins ties; a zoomed page gets
// neither (the zoom pan owns the pointer) and paging needs more than
// one page.
func (o *Overlay) pickAxis(x, y float64) {
	dx := x - o.startX
	dy := y - o.startY
	if math.Hypot(dx, dy) < axisSlop {
		return
	}
	if o.st.Pages.ActiveScaled() {
		return
	}
	if math.Abs(dx) >= math.Abs(dy) {
		if o.st.Session.Len() > 1 {
			o.axis = axisHorizontal
			o.pager.StartDrag(o.startX)
		}
		return
	}
	if o.st.Progress.Open() && !o.st.Dismiss.FlyingAway() {
		o.axis = axisVertical
		o.st.Dismiss.Start()
	}
}

// syncZoomState publishes the zoomer's boolean state to the page
// coordinator and hides the chrome when a zoom begins.
func (o *Overlay) syncZoomState() {
	zoomed := o.zoom.IsZoomed()
	o.st.Pages.SetScaled(o.pager.Active(), zoomed)
	if zoomed {
		o.st.Chrome.ForceHide()
	}
}

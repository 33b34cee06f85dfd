package widgets

import (
	"image"
	"image/color"
	"time"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/lightbox/internal/core"
	"github.com/elektrokombinacija/lightbox/internal/lightbox/interact"
	"github.com/elektrokombinacija/lightbox/internal/lightbox/state"
)

const (
	footerCollapsedHeight = 92
	footerExpandedHeight  = 260
	footerSlide           = 12.0
)

// momentumQuiet is how long after the last scroll event the caption's
// momentum is considered finished.
const momentumQuiet = 200 * time.Millisecond

// Footer is the bottom chrome: alt text and the collapsible caption.
// A tap toggles expansion, but only when the caption is not mid-scroll;
// a scroll decelerating under the finger must not read as a tap.
type Footer struct {
	st  *state.State
	tap interact.TapDetector

	scrollY    float64
	lastScroll time.Time
}

// NewFooter creates the footer bound to the shared state.
func NewFooter(st *state.State) *Footer {
	return &Footer{st: st}
}

// Height returns the footer's current height, blended between the
// collapsed and expanded sizes by the reveal transition.
func (f *Footer) Height() int {
	return int(core.Lerp(footerCollapsedHeight, footerExpandedHeight, f.st.Caption.Fraction()))
}

// Layout renders the caption panel at the bottom of the overlay.
func (f *Footer) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	frac := f.st.Chrome.Fraction()
	if frac <= 0 || !f.st.Caption.Present() {
		return layout.Dimensions{}
	}

	height := f.Height()
	top := gtx.Constraints.Max.Y - height + int(footerSlide*(1-frac))
	alpha := uint8(frac * 255)

	rect := image.Rect(0, top, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)
	paint.FillShape(gtx.Ops, color.NRGBA{A: alpha / 2}, clip.Rect(rect).Op())

	if f.st.Chrome.HitTestable() {
		f.handlePointer(gtx, rect)
	}

	src := f.st.Session.At(f.st.Pages.Active())

	defer clip.Rect(rect).Push(gtx.Ops).Pop()
	defer op.Offset(image.Pt(0, top-int(f.scrollY))).Push(gtx.Ops).Pop()

	return layout.Inset{Top: unit.Dp(10), Left: unit.Dp(14), Right: unit.Dp(14)}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if src.Alt == "" {
						return layout.Dimensions{}
					}
					alt := material.Label(th, 12, src.Alt)
					alt.Color = color.NRGBA{R: 160, G: 165, B: 175, A: alpha}
					return alt.Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					caption := material.Label(th, 14, src.Caption)
					caption.Color = color.NRGBA{R: 235, G: 235, B: 235, A: alpha}
					if !f.st.Caption.Expanded() {
						caption.MaxLines = state.CollapsedCaptionLines
					}
					return caption.Layout(gtx)
				}),
			)
		})
}

func (f *Footer) handlePointer(gtx layout.Context, rect image.Rectangle) {
	area := clip.Rect(rect).Push(gtx.Ops)
	event.Op(gtx.Ops, f)
	area.Pop()

	// Momentum quiesces when scroll events stop arriving.
	if !f.lastScroll.IsZero() && gtx.Now.Sub(f.lastScroll) > momentumQuiet {
		f.st.Caption.ScrollEnded()
		f.lastScroll = time.Time{}
	}

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: f,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		switch pe.Kind {
		case pointer.Press:
			f.tap.Press(float64(pe.Position.X), float64(pe.Position.Y), pe.Time)

		case pointer.Drag:
			f.tap.Move(float64(pe.Position.X), float64(pe.Position.Y))

		case pointer.Release:
			if f.tap.Release(pe.Time) != interact.TapNone {
				f.st.Caption.Tap(gtx.Now)
				if !f.st.Caption.Expanded() {
					f.scrollY = 0
				}
			}

		case pointer.Scroll:
			f.st.Caption.ScrollBegan()
			f.lastScroll = gtx.Now
			if f.st.Caption.Expanded() {
				f.scrollY = core.Clamp(f.scrollY+float64(pe.Scroll.Y), 0, footerExpandedHeight)
			}
		}
	}
}
